package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"streetbite/internal/domain/entity"
	"streetbite/internal/errors"
)

// wireTime decodes the timestamp formats the backend mixes: RFC 3339, a
// zone-less local date-time, a bare date and epoch milliseconds.
type wireTime struct {
	time.Time
}

var wireTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}

		return nil
	}

	if data[0] != '"' {
		ms, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return errors.Wrap(err, "decode epoch time")
		}
		t.Time = time.UnixMilli(ms).UTC()

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "decode time")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}

		return nil
	}
	for _, layout := range wireTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed

			return nil
		}
	}

	return errors.Errorf("unrecognized time %q", s)
}

func (t wireTime) ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.Time

	return &v
}

// ownerDTO is either a plain display name or a user object.
type ownerDTO struct {
	owner *entity.VendorOwner
}

func (o *ownerDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		o.owner = nil
	case data[0] == '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return errors.Wrap(err, "decode owner name")
		}
		o.owner = &entity.VendorOwner{DisplayName: name}
	default:
		var u struct {
			ID          entity.ID `json:"id"`
			DisplayName string    `json:"displayName"`
			Name        string    `json:"name"`
			Email       string    `json:"email"`
		}
		if err := json.Unmarshal(data, &u); err != nil {
			return errors.Wrap(err, "decode owner")
		}
		name := u.DisplayName
		if name == "" {
			name = u.Name
		}
		o.owner = &entity.VendorOwner{ID: u.ID, DisplayName: name, Email: u.Email}
	}

	return nil
}

type vendorDTO struct {
	ID              entity.ID `json:"id"`
	Name            string    `json:"name"`
	Cuisine         string    `json:"cuisine"`
	Address         string    `json:"address"`
	Description     string    `json:"description"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Status          string    `json:"status"`
	IsActive        *bool     `json:"isActive"`
	Rating          *float64  `json:"rating"`
	DisplayImageURL string    `json:"displayImageUrl"`
	Owner           ownerDTO  `json:"owner"`
	OwnerName       string    `json:"ownerName"`
	CreatedAt       wireTime  `json:"createdAt"`
}

func (d vendorDTO) toEntity() entity.Vendor {
	status := entity.VendorStatus(strings.ToUpper(strings.TrimSpace(d.Status)))
	if !status.IsValid() {
		status = entity.VendorStatusPending
		if d.IsActive != nil && *d.IsActive {
			status = entity.VendorStatusApproved
		}
	}

	rating := 0.0
	if d.Rating != nil {
		rating = *d.Rating
	}

	owner := d.Owner.owner
	if owner == nil && d.OwnerName != "" {
		owner = &entity.VendorOwner{DisplayName: d.OwnerName}
	}

	return entity.Vendor{
		ID:              d.ID,
		Name:            d.Name,
		Cuisine:         d.Cuisine,
		Address:         d.Address,
		Description:     d.Description,
		Latitude:        d.Latitude,
		Longitude:       d.Longitude,
		Status:          status,
		Rating:          rating,
		DisplayImageURL: d.DisplayImageURL,
		Owner:           owner,
		CreatedAt:       d.CreatedAt.Time,
	}
}

func vendorsFromDTO(dtos []vendorDTO) []entity.Vendor {
	out := make([]entity.Vendor, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.toEntity())
	}

	return out
}

type vendorRef struct {
	ID entity.ID `json:"id"`
}

type menuItemDTO struct {
	ID              entity.ID  `json:"id"`
	VendorID        entity.ID  `json:"vendorId"`
	Vendor          *vendorRef `json:"vendor"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Price           *float64   `json:"price"`
	IsAvailable     *bool      `json:"isAvailable"`
	Description     string     `json:"description"`
	PreparationTime *int       `json:"preparationTime"`
	ImageURL        string     `json:"imageUrl"`
}

// toEntity defaults a missing availability flag to available.
func (d menuItemDTO) toEntity() entity.MenuItem {
	item := entity.MenuItem{
		ID:          d.ID,
		VendorID:    d.VendorID,
		Name:        d.Name,
		Category:    d.Category,
		IsAvailable: true,
		Description: d.Description,
		ImageURL:    d.ImageURL,
	}
	if item.VendorID.IsZero() && d.Vendor != nil {
		item.VendorID = d.Vendor.ID
	}
	if d.Price != nil {
		item.Price = *d.Price
	}
	if d.IsAvailable != nil {
		item.IsAvailable = *d.IsAvailable
	}
	if d.PreparationTime != nil {
		item.PreparationTime = *d.PreparationTime
	}

	return item
}

type promotionDTO struct {
	ID            entity.ID  `json:"id"`
	Vendor        *vendorDTO `json:"vendor"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discountType"`
	DiscountValue *float64   `json:"discountValue"`
	PromoCode     string     `json:"promoCode"`
	StartDate     wireTime   `json:"startDate"`
	EndDate       wireTime   `json:"endDate"`
	IsActive      *bool      `json:"isActive"`
	MaxUses       *int       `json:"maxUses"`
	CurrentUses   *int       `json:"currentUses"`
	MinOrderValue *float64   `json:"minOrderValue"`
}

func (d promotionDTO) toEntity() entity.Promotion {
	p := entity.Promotion{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		DiscountType: entity.DiscountType(strings.ToUpper(strings.TrimSpace(d.DiscountType))),
		PromoCode:    d.PromoCode,
		StartDate:    d.StartDate.ptr(),
		EndDate:      d.EndDate.ptr(),
		IsActive:     d.IsActive == nil || *d.IsActive,
	}
	if d.Vendor != nil {
		p.Vendor = d.Vendor.toEntity()
	}
	if d.DiscountValue != nil {
		p.DiscountValue = *d.DiscountValue
	}
	if d.MaxUses != nil {
		p.MaxUses = *d.MaxUses
	}
	if d.CurrentUses != nil {
		p.CurrentUses = *d.CurrentUses
	}
	if d.MinOrderValue != nil {
		p.MinOrderValue = *d.MinOrderValue
	}

	return p
}

type hotTopicDTO struct {
	ID           entity.ID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"imageUrl"`
	IsActive     *bool     `json:"isActive"`
	Active       *bool     `json:"active"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    wireTime  `json:"createdAt"`
}

func (d hotTopicDTO) toEntity() entity.HotTopic {
	active := true
	switch {
	case d.IsActive != nil:
		active = *d.IsActive
	case d.Active != nil:
		active = *d.Active
	}

	return entity.HotTopic{
		ID:           d.ID,
		Title:        d.Title,
		Content:      d.Content,
		ImageURL:     d.ImageURL,
		IsActive:     active,
		LikeCount:    d.LikeCount,
		CommentCount: d.CommentCount,
		CreatedAt:    d.CreatedAt.Time,
	}
}

// leaderboardDTO is a user row as the backend emits it; rank and level are
// recomputed locally.
type leaderboardDTO struct {
	ID          entity.ID `json:"id"`
	UserID      entity.ID `json:"userId"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	XP          int       `json:"xp"`
}

func (d leaderboardDTO) toEntity() entity.LeaderboardEntry {
	id := d.UserID
	if id.IsZero() {
		id = d.ID
	}
	name := d.DisplayName
	if name == "" {
		name, _, _ = strings.Cut(d.Email, "@")
	}

	return entity.LeaderboardEntry{UserID: id, DisplayName: name, XP: d.XP}
}

type statsDTO struct {
	XP          int    `json:"xp"`
	Streak      int    `json:"streak"`
	Rank        int    `json:"rank"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	LastCheckIn string `json:"lastCheckIn"`
}

// toEntity keeps only the date part of lastCheckIn.
func (d statsDTO) toEntity() entity.GamificationStats {
	last := strings.TrimSpace(d.LastCheckIn)
	if len(last) > len(time.DateOnly) {
		last = last[:len(time.DateOnly)]
	}
	name := d.DisplayName
	if name == "" {
		name, _, _ = strings.Cut(d.Email, "@")
	}

	return entity.GamificationStats{
		DisplayName: name,
		XP:          max(d.XP, 0),
		Streak:      max(d.Streak, 0),
		Rank:        d.Rank,
		LastCheckIn: last,
	}
}

type userDTO struct {
	ID          entity.ID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	VendorID    entity.ID `json:"vendorId"`

	PhoneNumber    string `json:"phoneNumber"`
	ProfilePicture string `json:"profilePicture"`
}

// toUser defaults an unknown or missing role to USER.
func (d userDTO) toUser() entity.User {
	role := entity.Role(strings.ToUpper(strings.TrimSpace(d.Role)))
	switch role {
	case entity.RoleUser, entity.RoleVendor, entity.RoleAdmin:
	default:
		role = entity.RoleUser
	}

	return entity.User{
		ID:             d.ID,
		Email:          d.Email,
		DisplayName:    d.DisplayName,
		Role:           role,
		VendorID:       d.VendorID,
		PhoneNumber:    d.PhoneNumber,
		ProfilePicture: d.ProfilePicture,
	}
}

// loginDTO accepts the token as token or accessToken and the user either
// nested or flattened next to it.
type loginDTO struct {
	Token       string   `json:"token"`
	AccessToken string   `json:"accessToken"`
	User        *userDTO `json:"user"`
	userDTO
}

func (d loginDTO) toEntity() (*entity.Session, bool) {
	token := d.Token
	if token == "" {
		token = d.AccessToken
	}
	if token == "" {
		return nil, false
	}

	u := d.userDTO
	if d.User != nil {
		u = *d.User
	}

	return &entity.Session{Token: token, User: u.toUser()}, true
}

type reportDTO struct {
	ID entity.ID `json:"id"`
}

type menuItemRequest struct {
	VendorID        entity.ID `json:"vendorId"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	IsAvailable     bool      `json:"isAvailable"`
	Description     string    `json:"description,omitempty"`
	PreparationTime int       `json:"preparationTime,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty"`
}

type hotTopicRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
	IsActive bool   `json:"isActive"`
}
