// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TenantKind tells how the request host was classified.
type TenantKind int

const (
	// TenantSystem is one of the application's own domains (or an unknown
	// host that no courier claimed).
	TenantSystem TenantKind = iota
	// TenantCustomDomain is a personal domain bound to a courier profile.
	TenantCustomDomain
)

// String implements fmt.Stringer.
func (k TenantKind) String() string {
	switch k {
	case TenantCustomDomain:
		return "custom_domain"
	default:
		return "system"
	}
}

// Tenant is the result of host-based tenant resolution.
type Tenant struct {
	Kind TenantKind
	// Host is the normalised request host (lowercase, no port).
	Host string
	// Motoboy is set for TenantCustomDomain.
	Motoboy *Motoboy
}

// SlugKind tells what a top-level path segment refers to.
type SlugKind int

const (
	// SlugUnknown means neither a courier nor a store uses the slug.
	SlugUnknown SlugKind = iota
	// SlugIgnored is a well-known system file (favicon.ico, robots.txt, ...).
	SlugIgnored
	// SlugMotoboy is a courier SOS profile.
	SlugMotoboy
	// SlugLoja is a storefront.
	SlugLoja
)

// String implements fmt.Stringer.
func (k SlugKind) String() string {
	switch k {
	case SlugIgnored:
		return "ignored"
	case SlugMotoboy:
		return "motoboy"
	case SlugLoja:
		return "loja"
	default:
		return "unknown"
	}
}

// SlugResolution is the result of slug dispatch.
type SlugResolution struct {
	Kind    SlugKind
	Slug    string
	Motoboy *Motoboy
	Loja    *Loja
}
