package classy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"fund_sync/internal/domain"
)

// listResponse is one page of a collection endpoint.
type listResponse[T any] struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	Total       int `json:"total"`
	Data        []T `json:"data"`
}

type Designation struct {
	ID                  int64      `json:"id"`
	Name                string     `json:"name"`
	Description         *string    `json:"description"`
	IsActive            *bool      `json:"is_active"`
	ExternalReferenceID flexString `json:"external_reference_id"`
	Goal                *flexFloat `json:"goal"`
}

type Campaign struct {
	ID                  int64      `json:"id"`
	Status              string     `json:"status"`
	Name                string     `json:"name"`
	Goal                *flexFloat `json:"goal"`
	Overview            *string    `json:"overview"`
	ExternalReferenceID flexString `json:"external_reference_id"`
	CanonicalURL        *string    `json:"canonical_url"`
}

// flexFloat accepts amounts sent either as JSON numbers or as strings
// such as "8850.00".
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parse amount %q: %w", s, err)
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// flexString accepts identifiers sent as strings, as JSON numbers or as
// null. Numbers keep their literal text so "5" and 5 read the same.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Anything else (objects, booleans) is not a usable reference.
		*f = ""
		return nil
	}
	*f = flexString(n.String())
	return nil
}

func (f *flexFloat) ptr() *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}

func (d Designation) toDomain() domain.Designation {
	out := domain.Designation{
		ID:          strconv.FormatInt(d.ID, 10),
		Name:        d.Name,
		Description: d.Description,
		IsActive:    d.IsActive,
		Goal:        d.Goal.ptr(),

		ExternalReferenceID: string(d.ExternalReferenceID),
	}
	return out
}

func (c Campaign) toDomain() domain.Campaign {
	out := domain.Campaign{
		ID:     strconv.FormatInt(c.ID, 10),
		Status: domain.CampaignStatus(c.Status),
		Name:   c.Name,
		Goal:   c.Goal.ptr(),

		ExternalReferenceID: string(c.ExternalReferenceID),
	}
	if c.Overview != nil {
		out.Overview = *c.Overview
	}
	if c.CanonicalURL != nil {
		out.CanonicalURL = *c.CanonicalURL
	}
	return out
}
