// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the root Bubble Tea model for the terminal client.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
)

// =============================================================================
// AUTH FORM
// =============================================================================

// AuthMode selects which credential form is shown.
type AuthMode int

const (
	ModeSignIn AuthMode = iota
	ModeRegister
	ModeReset
	ModeResetConfirm
)

// field indexes into AuthForm.inputs.
const (
	fieldUsername = iota
	fieldEmail
	fieldToken
	fieldPassword
	fieldConfirm
	fieldCount
)

// AuthForm holds the sign-in, registration, and password-reset forms.
type AuthForm struct {
	Mode   AuthMode
	inputs [fieldCount]textinput.Model
	focus  int
	errMsg string
}

// NewAuthForm builds the form with the email field focused.
func NewAuthForm() AuthForm {
	f := AuthForm{}

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	f.inputs[fieldUsername] = username

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	f.inputs[fieldEmail] = email

	token := textinput.New()
	token.Placeholder = "reset token from email"
	token.CharLimit = 256
	f.inputs[fieldToken] = token

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	f.inputs[fieldPassword] = password

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'
	confirm.CharLimit = 128
	f.inputs[fieldConfirm] = confirm

	f.focus = fieldEmail
	f.inputs[fieldEmail].Focus()
	return f
}

// fields returns the active field indexes for the current mode, in tab
// order.
func (f *AuthForm) fields() []int {
	switch f.Mode {
	case ModeRegister:
		return []int{fieldUsername, fieldEmail, fieldPassword, fieldConfirm}
	case ModeReset:
		return []int{fieldEmail}
	case ModeResetConfirm:
		return []int{fieldToken, fieldPassword, fieldConfirm}
	default:
		return []int{fieldEmail, fieldPassword}
	}
}

// SetMode switches the form, clears transient state, and focuses the
// first field of the new mode.
func (f *AuthForm) SetMode(mode AuthMode) {
	f.Mode = mode
	f.errMsg = ""
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = f.fields()[0]
	f.inputs[f.focus].Focus()
}

// CycleMode rotates sign-in, register, reset.
func (f *AuthForm) CycleMode() {
	switch f.Mode {
	case ModeSignIn:
		f.SetMode(ModeRegister)
	case ModeRegister:
		f.SetMode(ModeReset)
	default:
		f.SetMode(ModeSignIn)
	}
}

// NextField moves focus to the next active field, wrapping.
func (f *AuthForm) NextField() {
	fields := f.fields()
	pos := 0
	for i, idx := range fields {
		if idx == f.focus {
			pos = i
			break
		}
	}
	f.inputs[f.focus].Blur()
	f.focus = fields[(pos+1)%len(fields)]
	f.inputs[f.focus].Focus()
}

// Update forwards a message to the focused field.
func (f *AuthForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// SetError displays a validation or backend error under the form.
func (f *AuthForm) SetError(msg string) {
	f.errMsg = msg
}

// Values returns the trimmed form values.
func (f *AuthForm) Values() (username, email, password, confirm string) {
	return strings.TrimSpace(f.inputs[fieldUsername].Value()),
		strings.TrimSpace(f.inputs[fieldEmail].Value()),
		f.inputs[fieldPassword].Value(),
		f.inputs[fieldConfirm].Value()
}

// ResetValues returns the reset-confirm fields.
func (f *AuthForm) ResetValues() (token, password, confirm string) {
	return strings.TrimSpace(f.inputs[fieldToken].Value()),
		f.inputs[fieldPassword].Value(),
		f.inputs[fieldConfirm].Value()
}

// Validate checks the active fields and records the first problem found.
// It returns true when the form can be submitted.
func (f *AuthForm) Validate() bool {
	username, email, password, confirm := f.Values()

	if f.Mode == ModeResetConfirm {
		token, password, confirm := f.ResetValues()
		if token == "" {
			f.errMsg = "Enter the token from the reset email"
			return false
		}
		if len(password) < 8 {
			f.errMsg = "Password must be at least 8 characters"
			return false
		}
		if password != confirm {
			f.errMsg = "Passwords do not match"
			return false
		}
		f.errMsg = ""
		return true
	}

	if email == "" || !strings.Contains(email, "@") {
		f.errMsg = "Enter a valid email address"
		return false
	}
	if f.Mode == ModeReset {
		f.errMsg = ""
		return true
	}
	if password == "" {
		f.errMsg = "Enter a password"
		return false
	}
	if f.Mode == ModeRegister {
		if username == "" {
			f.errMsg = "Enter a username"
			return false
		}
		if len(password) < 8 {
			f.errMsg = "Password must be at least 8 characters"
			return false
		}
		if password != confirm {
			f.errMsg = "Passwords do not match"
			return false
		}
	}
	f.errMsg = ""
	return true
}

// Reset clears every field and any error.
func (f *AuthForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.errMsg = ""
}

// titles per mode.
func (f *AuthForm) title() string {
	switch f.Mode {
	case ModeRegister:
		return "Create account"
	case ModeReset:
		return "Reset password"
	case ModeResetConfirm:
		return "Set new password"
	default:
		return "Sign in"
	}
}

// Render draws the form centered in the given area.
func (f *AuthForm) Render(theme *styles.Theme, width, height int) string {
	var b strings.Builder

	b.WriteString(theme.HeaderTitle.Render(f.title()))
	b.WriteString("\n\n")

	labels := map[int]string{
		fieldUsername: "Username",
		fieldEmail:    "Email",
		fieldToken:    "Token",
		fieldPassword: "Password",
		fieldConfirm:  "Confirm",
	}
	for _, idx := range f.fields() {
		label := theme.FormLabel.Render(labels[idx])
		if idx == f.focus {
			label = theme.FormFocused.Render(labels[idx])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.inputs[idx].View())
		b.WriteString("\n\n")
	}

	if f.errMsg != "" {
		b.WriteString(theme.FormError.Render(f.errMsg))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.FormButton.Render(" Submit (Enter) "))
	b.WriteString("\n")
	hint := "tab next field · ctrl+r switch form · ctrl+c quit"
	b.WriteString(theme.WelcomeMuted.Render(hint))

	box := theme.FormBox.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
