package console

import (
	"bufio"
	"context"
	"io"

	"github.com/oksasatya/go-store-registry/internal/application"
)

// Console is the interactive menu surface. It collects already-validated
// field values and hands them to the coordinators; all persistence decisions
// live below it.
type Console struct {
	users    *application.UserService
	products *application.ProductService
	in       *bufio.Reader
	out      io.Writer

	// set by readLine when the input is exhausted or broken; menus stop
	// prompting once it is non-nil
	readErr error
}

func New(users *application.UserService, products *application.ProductService, in io.Reader, out io.Writer) *Console {
	return &Console{
		users:    users,
		products: products,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run drives the top-level menu until the user exits or the context ends.
func (c *Console) Run(ctx context.Context) {
	for ctx.Err() == nil {
		c.println("")
		c.println("Choose which service to manage:")
		c.println("1. Users")
		c.println("2. Products")
		c.println("0. Exit")

		choice := c.promptString("Choose an action (0-2)")
		if c.readErr != nil {
			return
		}
		switch choice {
		case "1":
			c.userMenu(ctx)
		case "2":
			c.productMenu(ctx)
		case "0":
			return
		default:
			c.println("Invalid choice. Try again.")
		}
	}
}
