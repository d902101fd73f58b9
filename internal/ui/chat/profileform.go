// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the root Bubble Tea model for the terminal client.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/chatpaat-tui/internal/api"
	"github.com/jeranaias/chatpaat-tui/internal/auth"
	"github.com/jeranaias/chatpaat-tui/internal/ui/styles"
)

// =============================================================================
// PROFILE FORM
// =============================================================================

// profile form field indexes, in tab order.
const (
	profFirstName = iota
	profLastName
	profEmail
	profOldPassword
	profNewPassword
	profConfirmPassword
	profFieldCount
)

// ProfileForm edits the account profile and password. The password
// fields submit separately from the name/email fields.
type ProfileForm struct {
	inputs  [profFieldCount]textinput.Model
	focus   int
	loaded  bool
	email   string // email as loaded, for the avatar line
	confirm bool   // delete-account confirmation armed
}

// NewProfileForm builds an empty form; Populate fills it after the
// profile loads.
func NewProfileForm() ProfileForm {
	f := ProfileForm{}

	placeholders := [profFieldCount]string{
		"first name", "last name", "email",
		"current password", "new password", "confirm new password",
	}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 128
		if i >= profOldPassword {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		f.inputs[i] = in
	}
	f.inputs[profFirstName].Focus()
	return f
}

// Populate fills the editable fields from a loaded profile.
func (f *ProfileForm) Populate(p api.Profile) {
	f.inputs[profFirstName].SetValue(p.FirstName)
	f.inputs[profLastName].SetValue(p.LastName)
	f.inputs[profEmail].SetValue(p.Email)
	f.email = p.Email
	f.loaded = true
}

// Loaded reports whether a profile has been populated.
func (f *ProfileForm) Loaded() bool {
	return f.loaded
}

// NextField moves focus to the next field, wrapping.
func (f *ProfileForm) NextField() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % profFieldCount
	f.inputs[f.focus].Focus()
}

// InPasswordSection reports whether focus sits on a password field, so
// Enter submits the right half of the form.
func (f *ProfileForm) InPasswordSection() bool {
	return f.focus >= profOldPassword
}

// Update forwards a message to the focused field.
func (f *ProfileForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// Profile returns the edited profile values.
func (f *ProfileForm) Profile() api.Profile {
	return api.Profile{
		FirstName: strings.TrimSpace(f.inputs[profFirstName].Value()),
		LastName:  strings.TrimSpace(f.inputs[profLastName].Value()),
		Email:     strings.TrimSpace(f.inputs[profEmail].Value()),
	}
}

// Passwords returns the password-change values.
func (f *ProfileForm) Passwords() (old, newPassword, confirm string) {
	return f.inputs[profOldPassword].Value(),
		f.inputs[profNewPassword].Value(),
		f.inputs[profConfirmPassword].Value()
}

// ClearPasswords empties the password fields after a submit.
func (f *ProfileForm) ClearPasswords() {
	for i := profOldPassword; i < profFieldCount; i++ {
		f.inputs[i].SetValue("")
	}
}

// ArmDelete arms the delete-account confirmation; the next delete key
// actually deletes. Any other action should call DisarmDelete.
func (f *ProfileForm) ArmDelete() bool {
	if f.confirm {
		f.confirm = false
		return true
	}
	f.confirm = true
	return false
}

// DisarmDelete cancels a pending delete confirmation.
func (f *ProfileForm) DisarmDelete() {
	f.confirm = false
}

// DeleteArmed reports whether deletion is awaiting confirmation.
func (f *ProfileForm) DeleteArmed() bool {
	return f.confirm
}

// Render draws the profile screen.
func (f *ProfileForm) Render(theme *styles.Theme, width, height int) string {
	var b strings.Builder

	b.WriteString(theme.HeaderTitle.Render("Profile"))
	b.WriteString("\n\n")

	if !f.loaded {
		b.WriteString(theme.WelcomeMuted.Render("Loading profile…"))
		box := theme.FormBox.Render(b.String())
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}

	if f.email != "" {
		b.WriteString(theme.WelcomeMuted.Render("Avatar: " + auth.AvatarURL(f.email)))
		b.WriteString("\n\n")
	}

	labels := [profFieldCount]string{
		"First name", "Last name", "Email",
		"Current password", "New password", "Confirm new password",
	}
	for i := range f.inputs {
		if i == profOldPassword {
			b.WriteString(theme.SettingsSection.Render("Change password"))
			b.WriteString("\n")
		}
		label := theme.FormLabel.Render(labels[i])
		if i == f.focus {
			label = theme.FormFocused.Render(labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n\n")
	}

	if f.confirm {
		b.WriteString(theme.FormError.Render("Press ctrl+d again to permanently delete this account"))
		b.WriteString("\n\n")
	}

	hint := "enter save · tab next field · ctrl+d delete account · esc back"
	b.WriteString(theme.WelcomeMuted.Render(hint))

	box := theme.FormBox.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
