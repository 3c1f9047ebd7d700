package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"skillswap/internal/client/models"
	"skillswap/internal/client/services"
	"skillswap/internal/skillx"
)

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return false
	}
	return true
}

func (a *App) browse(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	users, err := a.directory.List(octx)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}

	a.lastDirectory = users
	a.printUsers(users)
}

func (a *App) search(ctx context.Context, term string) {
	if !a.requireLogin() {
		return
	}

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	users, err := a.directory.SearchBySkill(octx, term)
	if err != nil {
		if errors.Is(err, services.ErrEmptySearchTerm) {
			fmt.Fprintln(a.out, "Usage: search <skill>")
			return
		}
		logPrintf("error: %v", err)
		return
	}

	a.lastDirectory = users
	a.printUsers(users)
}

func (a *App) printUsers(users []*models.User) {
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found")
		return
	}
	for i, u := range users {
		fmt.Fprintf(a.out, "%2d. %s", i+1, u.Name)
		if u.Location != "" {
			fmt.Fprintf(a.out, " (%s)", u.Location)
		}
			fmt.Fprintf(a.out, " - rating %.1f, %d swaps\n", u.RatingAverage, u.TotalSwaps)
		fmt.Fprintf(a.out, "    offers: %s\n", skillx.Join(u.SkillsOffered))
		fmt.Fprintf(a.out, "    wants:  %s\n", skillx.Join(u.SkillsWanted))
	}
}

// pickUser resolves a 1-based index argument against the last rendered
// directory list.
func (a *App) pickUser(args []string) (*models.User, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: request <n> (run 'browse' or 'search' first)")
		return nil, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.lastDirectory) {
		fmt.Fprintln(a.out, "No such entry; run 'browse' or 'search' first")
		return nil, false
	}
	return a.lastDirectory[n-1], true
}

func (a *App) request(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	target, ok := a.pickUser(args)
	if !ok {
		return
	}

	if !a.beginOp() {
		fmt.Fprintln(a.out, "Another request is still in flight")
		return
	}
	defer a.endOp()

	requested, err := GetSimpleText(a.reader, "Which of their skills do you want?", a.out)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}
	offered, err := GetSimpleText(a.reader, "Which of your skills do you offer?", a.out)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}
	message, err := GetSimpleText(a.reader, "Message (optional)", a.out)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	req, err := a.swaps.Create(octx, target.ID, requested, offered, message)
	if err != nil {
		logPrintf("Could not send request: %v", err)
		return
	}
	fmt.Fprintf(a.out, "Request sent to %s (%s for %s)\n",
		target.Name, req.OfferedSkill, req.RequestedSkill)
}
