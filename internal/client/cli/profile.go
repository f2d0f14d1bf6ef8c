package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/voyage/internal/client/models"
	"github.com/dmitrijs2005/voyage/internal/common"
	"github.com/dmitrijs2005/voyage/internal/filex"
)

// MaxAvatarSize limits local avatar images.
const MaxAvatarSize = 5 << 20

func (a *App) Status(ctx context.Context) error {
	u, ok := a.store.CurrentUser()
	if !ok {
		a.println("Not logged in.")
		return nil
	}
	a.println("Logged in as", u.Email)
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	u, ok := a.store.CurrentUser()
	if !ok {
		a.println("Not logged in.")
		return nil
	}

	avatar := u.Avatar
	if avatar == "" {
		avatar = "(none)"
	}
	a.println(fmt.Sprintf("ID:     %s", u.ID))
	a.println(fmt.Sprintf("Name:   %s", u.Name))
	a.println(fmt.Sprintf("Email:  %s", u.Email))
	a.println(fmt.Sprintf("Avatar: %s", avatar))
	return nil
}

// Edit prompts for a new name and email. A blank answer keeps the current
// value; only changed fields are sent.
func (a *App) Edit(ctx context.Context) error {
	u, ok := a.store.CurrentUser()
	if !ok {
		a.println("Not logged in.")
		return nil
	}

	var patch models.ProfilePatch

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", u.Name), a.out)
	if err != nil {
		return err
	}
	if name = strings.TrimSpace(name); name != "" && name != u.Name {
		if err := models.ValidateName(name); err != nil {
			return a.report(err)
		}
		patch.Name = &name
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", u.Email), a.out)
	if err != nil {
		return err
	}
	if email != "" && email != u.Email {
		if err := models.ValidateEmail(email); err != nil {
			return a.report(err)
		}
		patch.Email = &email
	}

	return a.applyPatch(ctx, patch)
}

// Avatar sets the profile picture from an http(s) URL or a local image file.
func (a *App) Avatar(ctx context.Context) error {
	input, err := getSimpleText(a.reader, "Image URL or file path", a.out)
	if err != nil {
		return err
	}
	if input == "" {
		a.println("Nothing to change.")
		return nil
	}

	locator, err := avatarLocator(input)
	if err != nil {
		return a.report(err)
	}

	return a.applyPatch(ctx, models.ProfilePatch{Avatar: &locator})
}

func (a *App) applyPatch(ctx context.Context, patch models.ProfilePatch) error {
	if patch.IsEmpty() {
		a.println("Nothing to change.")
		return nil
	}

	a.println("Saving...")
	if err := a.store.UpdateProfile(ctx, patch); err != nil {
		return a.report(err)
	}
	a.println("Profile updated.")
	return nil
}

// avatarLocator turns user input into the string stored on the profile:
// remote URLs are kept as-is, local files become file:// URLs.
func avatarLocator(input string) (string, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		u, err := url.Parse(input)
		if err != nil || u.Host == "" {
			return "", fmt.Errorf("%w: please enter a valid image URL", common.ErrValidation)
		}
		return u.String(), nil
	}

	abs, err := filex.CheckImage(input, MaxAvatarSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	return (&url.URL{Scheme: "file", Path: abs}).String(), nil
}
