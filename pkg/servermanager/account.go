package servermanager

import (
	"maps"
	"strings"
)

// Account is a hosting account owned by the host platform.
type Account struct {
	Username string
	Password string
	Domain   string
	IP       string
	Reseller bool
	Client   Client
	Package  Package
}

// Client is the customer an account belongs to.
type Client struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Company   string
}

// FullName joins the first and last name.
func (c Client) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// Package is a hosting plan. Panel-specific attributes live in CustomValues.
type Package struct {
	Name         string
	CustomValues map[string]string
}

// CustomValue returns the named custom attribute and whether it is set.
func (p Package) CustomValue(key string) (string, bool) {
	if p.CustomValues == nil {
		return "", false
	}
	v, ok := p.CustomValues[key]
	return v, ok
}

// Clone returns a deep copy of the account.
func (a Account) Clone() Account {
	out := a
	out.Package.CustomValues = maps.Clone(a.Package.CustomValues)
	return out
}
