package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if user := a.session.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s)", user.Name)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to SkillSwap CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "ss %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami()

		case "browse":
			a.browse(ctx)
		case "search":
			a.search(ctx, strings.Join(args, " "))
		case "request":
			a.request(ctx, args)

		case "outgoing":
			a.outgoing(ctx)
		case "incoming":
			a.incoming(ctx)
		case "accept":
			a.decide(ctx, args, "accept")
		case "reject":
			a.decide(ctx, args, "reject")
		case "complete":
			a.complete(ctx, args)
		case "cancel":
			a.cancel(ctx, args)
		case "rate":
			a.rate(ctx, args)

		case "profile":
			a.showProfile(ctx)
		case "edit":
			a.editProfile(ctx)
		case "photo":
			a.uploadPhoto(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: browse, search <skill>, request <n>, outgoing, incoming,")
		fmt.Fprintln(a.out, "  accept|reject|complete|cancel <n>, rate <n>, profile, edit, photo <path>,")
		fmt.Fprintln(a.out, "  whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}
