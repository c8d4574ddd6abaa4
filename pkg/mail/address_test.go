package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    AddressInput
		expected AddressList
	}{
		{
			name:     "nil input",
			input:    nil,
			expected: AddressList{},
		},
		{
			name:     "single address",
			input:    Addr("a@x.com"),
			expected: AddressList{Addr("a@x.com")},
		},
		{
			name:     "named address",
			input:    NewAddress("John", "john@x.com"),
			expected: AddressList{NewAddress("John", "john@x.com")},
		},
		{
			name:     "zero address",
			input:    Address{},
			expected: AddressList{},
		},
		{
			name:     "mixed list keeps order",
			input:    AddressList{Addr("a@x.com"), NewAddress("B", "b@x.com"), Addr("c@x.com")},
			expected: AddressList{Addr("a@x.com"), NewAddress("B", "b@x.com"), Addr("c@x.com")},
		},
		{
			name:     "list drops zero entries",
			input:    AddressList{Addr("a@x.com"), {}, Addr("b@x.com")},
			expected: AddressList{Addr("a@x.com"), Addr("b@x.com")},
		},
		{
			name:     "empty list",
			input:    AddressList{},
			expected: AddressList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.input)
			assert.Len(t, got, len(tt.expected))
			for i := range tt.expected {
				assert.Equal(t, tt.expected[i], got[i])
			}
		})
	}
}

func TestAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     Address
		expected string
	}{
		{"bare", Addr("user@example.com"), "user@example.com"},
		{"named", NewAddress("John Doe", "john@example.com"), `"John Doe" <john@example.com>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestAddress_Equal(t *testing.T) {
	assert.True(t, Addr("a@x.com").Equal(Address{Email: "a@x.com"}))
	assert.False(t, Addr("a@x.com").Equal(NewAddress("A", "a@x.com")))
	assert.True(t, Address{}.IsZero())
	assert.False(t, NewAddress("Only Name", "").Equal(Address{}))
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Address
		expectErr bool
	}{
		{
			name:     "bare email",
			input:    "user@example.com",
			expected: Addr("user@example.com"),
		},
		{
			name:     "name and email",
			input:    "John Doe <john@example.com>",
			expected: NewAddress("John Doe", "john@example.com"),
		},
		{
			name:     "quoted name",
			input:    `"Doe, John" <john@example.com>`,
			expected: NewAddress("Doe, John", "john@example.com"),
		},
		{
			name:      "invalid",
			input:     "not an email",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAddress(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseAddressList(t *testing.T) {
	list, err := ParseAddressList("a@x.com, Bob <b@x.com>")
	require.NoError(t, err)
	assert.Equal(t, AddressList{Addr("a@x.com"), NewAddress("Bob", "b@x.com")}, list)

	list, err = ParseAddressList("  ")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = ParseAddressList("a@x.com, nope")
	assert.Error(t, err)
}

func TestAddressList_Strings(t *testing.T) {
	list := AddressList{Addr("a@x.com"), NewAddress("Bob", "b@x.com")}

	assert.Equal(t, []string{"a@x.com", `"Bob" <b@x.com>`}, list.Strings())
	assert.Equal(t, AddressList{Addr("a@x.com"), Addr("b@x.com")}, Emails("a@x.com", "b@x.com"))
}
