// Package fingerprint computes change-detection digests for remote designations.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"

	"fund_sync/internal/domain"
)

// domainDesignation prefixes every digest so a future change to the field
// set or encoding yields a disjoint digest space.
const domainDesignation = "fundsync/designation/v1"

// fields fixes the serialized order. Absent values collapse to their zero
// sentinel so nil and empty inputs digest the same.
type fields struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	Goal        string `json:"goal"`
}

// Designation returns the hex digest of the externally visible fields of d:
// name, description, active flag and goal. It is a change detector only.
func Designation(d domain.Designation) string {
	f := fields{Name: d.Name, Goal: "0"}
	if d.Description != nil {
		f.Description = *d.Description
	}
	if d.IsActive != nil {
		f.IsActive = *d.IsActive
	}
	if d.Goal != nil {
		f.Goal = strconv.FormatFloat(*d.Goal, 'f', -1, 64)
	}

	// Marshalling a struct of strings and a bool cannot fail.
	data, _ := json.Marshal(f)
	return hashWithDomain(domainDesignation, data)
}

func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
