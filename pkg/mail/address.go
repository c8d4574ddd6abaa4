package mail

import (
	"net/mail"
	"strings"
)

// Address is a named or bare email endpoint
type Address struct {
	Name  string
	Email string
}

// Addr creates an Address without a display name
func Addr(email string) Address {
	return Address{Email: email}
}

// NewAddress creates an Address with a display name
func NewAddress(name, email string) Address {
	return Address{Name: name, Email: email}
}

// ParseAddress parses "Name <email>" or a bare email into an Address
func ParseAddress(input string) (Address, error) {
	addr, err := mail.ParseAddress(input)
	if err != nil {
		return Address{}, err
	}
	return Address{Name: addr.Name, Email: addr.Address}, nil
}

// IsZero reports whether the address has no email
func (a Address) IsZero() bool {
	return a.Email == ""
}

// Equal reports whether both addresses carry the same name and email
func (a Address) Equal(other Address) bool {
	return a == other
}

// String renders the address in RFC 5322 form
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return (&mail.Address{Name: a.Name, Address: a.Email}).String()
}

func (a Address) addresses() AddressList {
	if a.IsZero() {
		return nil
	}
	return AddressList{a}
}

// AddressList is an ordered, append-only list of addresses
type AddressList []Address

// Emails builds an AddressList from bare email strings
func Emails(emails ...string) AddressList {
	list := make(AddressList, 0, len(emails))
	for _, e := range emails {
		list = append(list, Addr(e))
	}
	return list
}

// ParseAddressList parses a comma separated list of addresses
func ParseAddressList(input string) (AddressList, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	parsed, err := mail.ParseAddressList(input)
	if err != nil {
		return nil, err
	}
	list := make(AddressList, 0, len(parsed))
	for _, p := range parsed {
		list = append(list, Address{Name: p.Name, Email: p.Address})
	}
	return list, nil
}

// Strings returns the RFC 5322 form of every address
func (l AddressList) Strings() []string {
	out := make([]string, 0, len(l))
	for _, a := range l {
		out = append(out, a.String())
	}
	return out
}

func (l AddressList) addresses() AddressList {
	out := make(AddressList, 0, len(l))
	for _, a := range l {
		if a.IsZero() {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AddressInput is anything accepted where addresses are expected:
// nil (none), a single Address, or an AddressList.
type AddressInput interface {
	addresses() AddressList
}

// normalize converts an AddressInput to an AddressList, nil input yields an empty list
func normalize(in AddressInput) AddressList {
	if in == nil {
		return nil
	}
	return in.addresses()
}
