package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"skillswap/internal/client/models"
	"skillswap/internal/client/services"
)

func (a *App) outgoing(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	reqs, err := a.swaps.ListOutgoing(octx)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}
	a.lastOutgoing = reqs
	a.printSwaps(reqs, "No outgoing requests")
}

func (a *App) incoming(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	reqs, err := a.swaps.ListIncoming(octx)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}
	a.lastIncoming = reqs
	a.printSwaps(reqs, "No incoming requests")
}

func (a *App) printSwaps(reqs []*models.SwapRequest, emptyMsg string) {
	if len(reqs) == 0 {
		fmt.Fprintln(a.out, emptyMsg)
		return
	}

	viewerID := ""
	if user := a.session.CurrentUser(); user != nil {
		viewerID = user.ID
	}

	for i, r := range reqs {
		fmt.Fprintf(a.out, "%2d. [%s] %s for %s", i+1, r.Status, r.OfferedSkill, r.RequestedSkill)
		if r.Message != "" {
			fmt.Fprintf(a.out, " - %q", r.Message)
		}
		if actions := services.AllowedActions(r, viewerID); len(actions) > 0 {
			strs := make([]string, len(actions))
			for j, act := range actions {
				strs[j] = string(act)
			}
			fmt.Fprintf(a.out, "  (%s)", strings.Join(strs, "/"))
		}
		fmt.Fprintln(a.out)
	}
}

func pickSwap(list []*models.SwapRequest, args []string) (*models.SwapRequest, bool) {
	if len(args) == 0 {
		return nil, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(list) {
		return nil, false
	}
	return list[n-1], true
}

// decide accepts or rejects an incoming request by index.
func (a *App) decide(ctx context.Context, args []string, verb string) {
	if !a.requireLogin() {
		return
	}
	req, ok := pickSwap(a.lastIncoming, args)
	if !ok {
		fmt.Fprintf(a.out, "Usage: %s <n> (run 'incoming' first)\n", verb)
		return
	}

	if !a.beginOp() {
		fmt.Fprintln(a.out, "Another request is still in flight")
		return
	}
	defer a.endOp()

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	var (
		list []*models.SwapRequest
		err  error
	)
	if verb == "accept" {
		list, err = a.swaps.Accept(octx, req.ID)
	} else {
		list, err = a.swaps.Reject(octx, req.ID)
	}
	if err != nil {
		logPrintf("Could not %s: %v", verb, err)
		return
	}

	a.lastIncoming = list
	a.printSwaps(list, "No incoming requests")
}

// complete finishes an accepted swap; the index is looked up in the
// incoming list first, then the outgoing one.
func (a *App) complete(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}

	req, ok := pickSwap(a.lastIncoming, args)
	if !ok {
		req, ok = pickSwap(a.lastOutgoing, args)
	}
	if !ok {
		fmt.Fprintln(a.out, "Usage: complete <n> (run 'incoming' or 'outgoing' first)")
		return
	}

	if !a.beginOp() {
		fmt.Fprintln(a.out, "Another request is still in flight")
		return
	}
	defer a.endOp()

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	outgoing, incoming, err := a.swaps.Complete(octx, req.ID)
	if err != nil {
		logPrintf("Could not complete: %v", err)
		return
	}

	a.lastOutgoing = outgoing
	a.lastIncoming = incoming
	fmt.Fprintln(a.out, "Swap completed. You can now 'rate' your partner.")
}

func (a *App) cancel(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	req, ok := pickSwap(a.lastOutgoing, args)
	if !ok {
		fmt.Fprintln(a.out, "Usage: cancel <n> (run 'outgoing' first)")
		return
	}

	if !a.beginOp() {
		fmt.Fprintln(a.out, "Another request is still in flight")
		return
	}
	defer a.endOp()

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	list, err := a.swaps.Cancel(octx, req.ID)
	if err != nil {
		logPrintf("Could not cancel: %v", err)
		return
	}

	a.lastOutgoing = list
	a.printSwaps(list, "No outgoing requests")
}

func (a *App) rate(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}

	req, ok := pickSwap(a.lastIncoming, args)
	if !ok {
		req, ok = pickSwap(a.lastOutgoing, args)
	}
	if !ok {
		fmt.Fprintln(a.out, "Usage: rate <n> (run 'incoming' or 'outgoing' first)")
		return
	}
	if req.Status != models.SwapStatusCompleted {
		fmt.Fprintln(a.out, "Only completed swaps can be rated")
		return
	}

	scoreText, err := GetSimpleText(a.reader, "Rating (1-5)", a.out)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}
	score, err := strconv.Atoi(scoreText)
	if err != nil {
		fmt.Fprintln(a.out, "Rating must be a number between 1 and 5")
		return
	}
	comment, err := GetSimpleText(a.reader, "Comment (optional)", a.out)
	if err != nil {
		logPrintf("error: %v", err)
		return
	}

	octx, cancel := a.opCtx(ctx)
	defer cancel()

	if _, err := a.ratings.Rate(octx, req, score, comment); err != nil {
		logPrintf("Could not rate: %v", err)
		return
	}
	fmt.Fprintln(a.out, "Thanks for the feedback!")
}
