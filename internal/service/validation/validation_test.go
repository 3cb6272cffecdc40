package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
)

func validDraft() *domain.BookingDraft {
	return &domain.BookingDraft{
		Religion: &domain.Religion{ID: "hindu", Name: "Hindu"},
		PersonalInfo: domain.PersonalInfo{
			Name:    "Ramesh Kumar",
			Address: "12 MG Road, Delhi",
			Phone:   "+91 9876543210",
			Email:   "ramesh@example.com",
		},
	}
}

func TestValidateDraft_EmailPath(t *testing.T) {
	opts := Options{RequireEmail: true}

	tests := []struct {
		name    string
		mutate  func(d *domain.BookingDraft)
		wantErr error
	}{
		{
			name:    "valid draft passes",
			mutate:  func(d *domain.BookingDraft) {},
			wantErr: nil,
		},
		{
			name:    "empty name",
			mutate:  func(d *domain.BookingDraft) { d.PersonalInfo.Name = "" },
			wantErr: ErrNameRequired,
		},
		{
			name:    "whitespace-only name",
			mutate:  func(d *domain.BookingDraft) { d.PersonalInfo.Name = "   \t" },
			wantErr: ErrNameRequired,
		},
		{
			name:    "empty email",
			mutate:  func(d *domain.BookingDraft) { d.PersonalInfo.Email = "" },
			wantErr: ErrEmailRequired,
		},
		{
			name:    "email without dot segment",
			mutate:  func(d *domain.BookingDraft) { d.PersonalInfo.Email = "foo@bar" },
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "email without at sign",
			mutate:  func(d *domain.BookingDraft) { d.PersonalInfo.Email = "foobar.com" },
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "email with whitespace",
			mutate:  func(d *domain.BookingDraft) { d.PersonalInfo.Email = "foo bar@baz.com" },
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "empty address",
			mutate:  func(d *domain.BookingDraft) { d.PersonalInfo.Address = "  " },
			wantErr: ErrAddressRequired,
		},
		{
			name:    "empty phone",
			mutate:  func(d *domain.BookingDraft) { d.PersonalInfo.Phone = "" },
			wantErr: ErrPhoneRequired,
		},
		{
			name:    "missing religion",
			mutate:  func(d *domain.BookingDraft) { d.Religion = nil },
			wantErr: ErrReligionRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(draft)

			err := ValidateDraft(draft, opts)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// Правила применяются по порядку: при нескольких нарушениях
// возвращается только первое
func TestValidateDraft_ShortCircuitOrder(t *testing.T) {
	draft := validDraft()
	draft.PersonalInfo.Name = ""
	draft.PersonalInfo.Email = ""
	draft.PersonalInfo.Address = ""

	err := ValidateDraft(draft, Options{RequireEmail: true})
	assert.ErrorIs(t, err, ErrNameRequired)

	draft.PersonalInfo.Name = "Ramesh"
	err = ValidateDraft(draft, Options{RequireEmail: true})
	assert.ErrorIs(t, err, ErrEmailRequired)

	draft.PersonalInfo.Email = "not-an-email"
	err = ValidateDraft(draft, Options{RequireEmail: true})
	assert.ErrorIs(t, err, ErrEmailInvalid)

	draft.PersonalInfo.Email = "ok@example.com"
	err = ValidateDraft(draft, Options{RequireEmail: true})
	assert.ErrorIs(t, err, ErrAddressRequired)
}

func TestValidateDraft_MessagingPathSkipsEmail(t *testing.T) {
	draft := validDraft()
	draft.PersonalInfo.Email = ""

	err := ValidateDraft(draft, Options{RequireEmail: false})
	require.NoError(t, err)

	// Даже некорректный email не проверяется на этом пути
	draft.PersonalInfo.Email = "not-an-email"
	err = ValidateDraft(draft, Options{RequireEmail: false})
	require.NoError(t, err)
}

func TestValidateDraft_DoesNotMutate(t *testing.T) {
	draft := validDraft()
	draft.PersonalInfo.Name = "  Ramesh  "

	_ = ValidateDraft(draft, Options{RequireEmail: true})

	assert.Equal(t, "  Ramesh  ", draft.PersonalInfo.Name)
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{ErrNameRequired, "Name is required"},
		{ErrEmailRequired, "Email is required"},
		{ErrEmailInvalid, "Please enter a valid email address"},
		{ErrAddressRequired, "Address is required"},
		{ErrPhoneRequired, "Phone number is required"},
		{ErrReligionRequired, "Religion selection is required"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Message(tt.err))
	}
}
