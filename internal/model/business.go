// Package model defines the client-side representations of the Gateway's
// entities. The Gateway is authoritative for all of them; these types only
// mirror the JSON it serves.
package model

import "strconv"

// SelectionAll is the business selection meaning "no business scope".
const SelectionAll = "all"

// Business identifies a tenant scope on the Gateway.
type Business struct {
	ID               int64  `json:"id"`
	BusinessName     string `json:"business_name"`
	BusinessType     string `json:"business_type"`
	ContactNumber    string `json:"contact_number"`
	GSTTaxID         string `json:"gst_tax_id"`
	BusinessAddress  string `json:"business_address"`
	DepartmentBranch string `json:"department_branch"`
}

// DisplayName returns the business name, falling back to a generated label
// for rows created before the name field existed.
func (b Business) DisplayName() string {
	if b.BusinessName != "" {
		return b.BusinessName
	}
	return "Business " + strconv.FormatInt(b.ID, 10)
}

// Selection returns the value this business takes as a scope selection.
func (b Business) Selection() string {
	return strconv.FormatInt(b.ID, 10)
}

// NewBusiness is the payload for creating a business. CopyFromBusiness
// optionally seeds the new business with another one's product catalog.
type NewBusiness struct {
	BusinessName     string `json:"business_name"`
	BusinessType     string `json:"business_type"`
	ContactNumber    string `json:"contact_number"`
	GSTTaxID         string `json:"gst_tax_id"`
	BusinessAddress  string `json:"business_address"`
	DepartmentBranch string `json:"department_branch"`
	CopyFromBusiness string `json:"copy_from_business,omitempty"`
}
