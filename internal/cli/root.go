package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	if u := a.session.Current(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to NovaBiz CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
