// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Country is the top of the location hierarchy.
type Country struct {
	ID     uuid.UUID `json:"country_id"`
	Name   string    `json:"name"`
	Code   string    `json:"code"`   // ISO code, e.g. "PE".
	Prefix string    `json:"prefix"` // Phone prefix, e.g. "+51".
}

// Region belongs to a country.
type Region struct {
	ID        uuid.UUID `json:"region_id"`
	Name      string    `json:"name"`
	CountryID uuid.UUID `json:"country_id"`
	Country   *Country  `json:"country,omitempty"`
}

// City belongs to a region.
type City struct {
	ID       uuid.UUID `json:"city_id"`
	Name     string    `json:"name"`
	RegionID uuid.UUID `json:"region_id"`
	Region   *Region   `json:"region,omitempty"`
}
