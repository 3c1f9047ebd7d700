package cli

import (
	"context"
	"fmt"

	"skillswap/internal/client/models"
	"skillswap/internal/skillx"
)

func (a *App) showProfile(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	user, err := a.session.RefreshCurrentUser(octx)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}

	visibility := "private"
	if user.IsPublic {
		visibility = "public"
	}

	fmt.Fprintf(a.out, "%s <%s> - %s profile\n", user.Name, user.Email, visibility)
	if user.Location != "" {
		fmt.Fprintf(a.out, "  location: %s\n", user.Location)
	}
	if user.Bio != "" {
		fmt.Fprintf(a.out, "  bio: %s\n", user.Bio)
	}
	fmt.Fprintf(a.out, "  offers: %s\n", skillx.Join(user.SkillsOffered))
	fmt.Fprintf(a.out, "  wants:  %s\n", skillx.Join(user.SkillsWanted))
	if user.Availability != "" {
		fmt.Fprintf(a.out, "  availability: %s\n", user.Availability)
	}
	if user.ProfilePhoto != "" {
		fmt.Fprintf(a.out, "  photo: %s\n", user.ProfilePhoto)
	}
	fmt.Fprintf(a.out, "  rating: %.1f over %d swaps\n", user.RatingAverage, user.TotalSwaps)
}

func (a *App) editProfile(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	loadCtx, cancel := a.opCtx(ctx)
	form, err := a.profile.LoadCurrent(loadCtx)
	cancel()
	if err != nil {
		logPrintf("error: %v", err)
		return
	}

	updated := models.ProfileForm{}
	fields := []struct {
		label string
		cur   string
		dst   *string
	}{
		{"Name", form.Name, &updated.Name},
		{"Location", form.Location, &updated.Location},
		{"Bio", form.Bio, &updated.Bio},
		{"Skills you offer (comma-separated)", form.SkillsOffered, &updated.SkillsOffered},
		{"Skills you want (comma-separated)", form.SkillsWanted, &updated.SkillsWanted},
		{"Availability", form.Availability, &updated.Availability},
	}
	for _, f := range fields {
		if *f.dst, err = GetTextWithDefault(a.reader, f.label, f.cur, a.out); err != nil {
			logPrintf("error: %v", err)
			return
		}
	}

	if updated.IsPublic, err = GetYesNo(a.reader, "Public profile?", form.IsPublic, a.out); err != nil {
		logPrintf("error: %v", err)
		return
	}

	if !a.beginOp() {
		fmt.Fprintln(a.out, "Another request is still in flight")
		return
	}
	defer a.endOp()

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	if _, err := a.profile.Save(octx, updated); err != nil {
		logPrintf("Could not save profile: %v", err)
		return
	}
	fmt.Fprintln(a.out, "Profile saved")
}

func (a *App) uploadPhoto(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: photo <path>")
		return
	}

	if !a.beginOp() {
		fmt.Fprintln(a.out, "Another request is still in flight")
		return
	}
	defer a.endOp()

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	url, err := a.profile.UploadPhoto(octx, args[0])
	if err != nil {
		logPrintf("Could not upload photo: %v", err)
		return
	}
	fmt.Fprintln(a.out, "Photo uploaded:", url)
}
