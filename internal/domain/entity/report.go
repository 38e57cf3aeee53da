package entity

// Report is a user complaint about a vendor or content.
type Report struct {
	ID       ID     `json:"id,omitempty"`
	VendorID ID     `json:"vendorId,omitempty"`
	Reason   string `json:"reason"`
	Details  string `json:"details,omitempty"`
}
