package cli

import (
	"context"
	"fmt"

	"skillswap/internal/client/models"
	"skillswap/internal/skillx"
)

func (a *App) register(ctx context.Context) {
	form := models.RegisterForm{}
	var err error

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Enter your name", &form.Name},
		{"Enter email", &form.Email},
		{"Enter location (optional)", &form.Location},
		{"Skills you offer (comma-separated)", &form.SkillsOffered},
		{"Skills you want to learn (comma-separated)", &form.SkillsWanted},
		{"Availability (e.g. weekends, optional)", &form.Availability},
	}
	for _, p := range prompts {
		if *p.dst, err = GetSimpleText(a.reader, p.label, a.out); err != nil {
			logPrintf("error: %v", err)
			return
		}
	}

	password, err := GetPassword(a.out)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}
	form.Password = string(password)

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.session.Register(octx, form); err != nil {
		logPrintf("Registration unsuccessful: %v", err)
		return
	}
	fmt.Fprintln(a.out, "Welcome,", a.session.CurrentUser().Name)
}

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.session.Login(octx, email, string(password)); err != nil {
		logPrintf("Login unsuccessful: %v", err)
		return
	}
	fmt.Fprintln(a.out, "Welcome back,", a.session.CurrentUser().Name)
}

func (a *App) logout(ctx context.Context) {
	octx, cancel := a.opCtx(ctx)
	defer cancel()

	if err := a.session.Logout(octx); err != nil {
		logPrintf("error: %v", err)
		return
	}
	a.lastDirectory = nil
	a.lastOutgoing = nil
	a.lastIncoming = nil
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) whoami() {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
	fmt.Fprintf(a.out, "  offers: %s\n", skillx.Join(user.SkillsOffered))
	fmt.Fprintf(a.out, "  wants:  %s\n", skillx.Join(user.SkillsWanted))
	fmt.Fprintf(a.out, "  rating: %.1f over %d swaps\n", user.RatingAverage, user.TotalSwaps)
}
