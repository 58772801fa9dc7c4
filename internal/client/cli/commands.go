package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/t4gged/t4gged/internal/client/client"
	"github.com/t4gged/t4gged/internal/client/models"
	"github.com/t4gged/t4gged/internal/common"
)

var errLocked = errors.New("profile is locked")

// describe turns err into a line for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrNoIdentity):
		return "No identity on this device. Place an identity token and try again."
	case errors.Is(err, common.ErrIdentityUnavailable):
		return "Identity service unavailable, try again later."
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later."
	case errors.Is(err, common.ErrNotSignedIn):
		return "Not signed in, run 'signin' first."
	case errors.Is(err, errLocked):
		return "Profile is locked, run 'unlock' first."
	case errors.Is(err, common.ErrWrongPasscode):
		return "Wrong passcode."
	case errors.Is(err, common.ErrAlreadyResolved):
		return "Invite already handled."
	case errors.Is(err, common.ErrDuplicatePending):
		return "You already have a pending invite with this user."
	case errors.Is(err, common.ErrSelfInvite):
		return "You cannot invite yourself."
	case errors.Is(err, common.ErrNotRecipient):
		return "Only the invited user can respond to this invite."
	case errors.Is(err, common.ErrRateLimited):
		return "Too many invites, wait a moment and try again."
	default:
		return "Error: " + err.Error()
	}
}

func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, describe(err))
	return err
}

func (a *App) guard() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch {
	case a.userName == "":
		return common.ErrNotSignedIn
	case a.locked:
		return errLocked
	}
	return nil
}

func (a *App) SignIn(ctx context.Context, args []string) error {
	var override *string
	if name := strings.TrimSpace(strings.Join(args, " ")); name != "" {
		override = &name
	}

	p, err := a.sessions.SignIn(ctx, override)
	if err != nil {
		return a.fail(err)
	}

	a.mu.Lock()
	a.userName = p.DisplayName()
	a.locked = false
	a.mu.Unlock()

	fmt.Fprintf(a.out, "Signed in as %s\n", p.DisplayName())
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	p, err := a.sessions.Current(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Username: %s\nRecord:   %s\n", p.DisplayName(), p.RecordName)
	if p.Email != nil {
		fmt.Fprintf(a.out, "Email:    %s\n", *p.Email)
	}
	if len(p.AvatarData) > 0 {
		fmt.Fprintf(a.out, "Avatar:   %d bytes\n", len(p.AvatarData))
	}
	if p.HasPasscode() {
		fmt.Fprintln(a.out, "Passcode: set")
	}
	return nil
}

func (a *App) Email(ctx context.Context, args []string) error {
	if err := a.guard(); err != nil {
		return a.fail(err)
	}
	if len(args) > 1 {
		fmt.Fprintln(a.out, "Usage: email <addr>")
		return common.ErrInvalidArgument
	}
	addr := ""
	if len(args) == 1 {
		addr = args[0]
	}
	p, err := a.profiles.SetEmail(ctx, addr)
	if err != nil {
		return a.fail(err)
	}
	if p.Email == nil {
		fmt.Fprintln(a.out, "Email cleared")
	} else {
		fmt.Fprintf(a.out, "Email set to %s\n", *p.Email)
	}
	return nil
}

func (a *App) Passcode(ctx context.Context) error {
	if err := a.guard(); err != nil {
		return a.fail(err)
	}
	pw, err := GetNewPassword(a.out, "New passcode")
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(pw)

	if err := a.profiles.SetPasscode(ctx, pw); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Passcode set")
	return nil
}

func (a *App) Unlock(ctx context.Context) error {
	pw, err := GetPassword(a.out, "Passcode")
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(pw)

	if err := a.profiles.VerifyPasscode(ctx, pw); err != nil {
		return a.fail(err)
	}
	a.mu.Lock()
	a.locked = false
	a.mu.Unlock()
	fmt.Fprintln(a.out, "Unlocked")
	return nil
}

func (a *App) Avatar(ctx context.Context, path string) error {
	if err := a.guard(); err != nil {
		return a.fail(err)
	}
	data, err := a.readFile(path)
	if err != nil {
		return a.fail(err)
	}
	url, err := a.profiles.SetAvatar(ctx, data)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Avatar uploaded: %s\n", url)
	return nil
}

func (a *App) Invite(ctx context.Context, toUser string) error {
	if err := a.guard(); err != nil {
		return a.fail(err)
	}
	inv, err := a.invites.Send(ctx, toUser)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Invite %s sent to %s\n", inv.ID, inv.ToUser)
	return nil
}

// Invites accepts "in"/"out" (or the long forms) and an optional status in
// either order.
func (a *App) Invites(ctx context.Context, args []string) error {
	if err := a.guard(); err != nil {
		return a.fail(err)
	}
	direction, status := "", ""
	for _, arg := range args {
		switch arg {
		case "in", "incoming":
			direction = "incoming"
		case "out", "outgoing":
			direction = "outgoing"
		default:
			status = arg
		}
	}

	list, err := a.invites.List(ctx, direction, status)
	if err != nil {
		return a.fail(err)
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No invites")
		return nil
	}
	for _, inv := range list {
		a.printInvite(inv)
	}
	return nil
}

func (a *App) printInvite(inv *models.Invite) {
	fmt.Fprintf(a.out, "%s  %s -> %s  %s  %s\n", inv.ID, inv.FromUser, inv.ToUser, inv.Status, inv.SentAt.Format("2006-01-02 15:04"))
}

func (a *App) Accept(ctx context.Context, inviteID string) error {
	if err := a.guard(); err != nil {
		return a.fail(err)
	}
	_, fr, err := a.invites.Accept(ctx, inviteID)
	if err != nil {
		return a.fail(err)
	}
	if fr == nil {
		fmt.Fprintln(a.out, "Accepted")
		return nil
	}
	fmt.Fprintf(a.out, "Accepted, friendship %s\n", fr.ID)
	return nil
}

func (a *App) Decline(ctx context.Context, inviteID string) error {
	if err := a.guard(); err != nil {
		return a.fail(err)
	}
	inv, err := a.invites.Decline(ctx, inviteID)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Declined invite %s\n", inv.ID)
	return nil
}

func (a *App) Friends(ctx context.Context) error {
	if err := a.guard(); err != nil {
		return a.fail(err)
	}
	list, err := a.invites.Friends(ctx)
	if err != nil {
		return a.fail(err)
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No friends yet")
		return nil
	}
	for _, fr := range list {
		fmt.Fprintf(a.out, "%s  %s <-> %s  since %s\n", fr.ID, fr.UserA, fr.UserB, fr.Since.Format("2006-01-02"))
	}
	return nil
}

func (a *App) SignOut(ctx context.Context) error {
	if err := a.sessions.SignOut(ctx); err != nil {
		return a.fail(err)
	}
	a.mu.Lock()
	a.userName = ""
	a.locked = false
	a.mu.Unlock()
	fmt.Fprintln(a.out, "Signed out")
	return nil
}
