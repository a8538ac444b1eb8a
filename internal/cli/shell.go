package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const shellHelpLoggedOut = `Available commands:
  register          create a profile
  login             log in
  generate [n]      generate a password
  help              show this help
  exit | quit       leave the shell`

const shellHelpLoggedIn = `Available commands:
  add               add a credential
  list              list credentials
  find <query>      list credentials whose website contains query
  show <n|id>       show a credential with its password
  copy <n|id>       copy a password to the clipboard
  delete <n|id>     delete a credential
  generate [n]      generate a password
  register          create another profile
  login             log in again
  help              show this help
  exit | quit       leave the shell`

// runShell reads commands until exit, quit or end of input.
// Command errors are printed and do not stop the loop.
func (c *Cli) runShell(ctx context.Context) error {
	c.io.Println("youshallpass interactive shell. Type 'help' for commands.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := c.io.ReadInput(c.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.io.Println()
				c.io.Println("Bye!")
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		exit, err := c.dispatch(ctx, fields[0], fields[1:])
		if err != nil {
			c.io.Printf("Error: %v\n", err)
		}
		if exit {
			c.io.Println("Bye!")
			return nil
		}
	}
}

func (c *Cli) prompt() string {
	if c.auth.IsAuthenticated() {
		return "youshallpass [logged in]> "
	}
	return "youshallpass> "
}

// dispatch выполняет одну команду оболочки
func (c *Cli) dispatch(ctx context.Context, cmd string, args []string) (bool, error) {
	switch cmd {
	case "help":
		if c.auth.IsAuthenticated() {
			c.io.Println(shellHelpLoggedIn)
		} else {
			c.io.Println(shellHelpLoggedOut)
		}
		return false, nil

	case "register":
		return false, c.runRegister(ctx)

	case "login":
		return false, c.runLogin(ctx)

	case "generate":
		length := 0
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return false, fmt.Errorf("invalid length %q", args[0])
			}
			length = n
		}
		return false, c.runGenerate(length)

	case "add":
		return false, c.runAdd()

	case "list", "l":
		return false, c.runList("")

	case "find":
		if err := c.requireLogin(); err != nil {
			return false, err
		}
		if len(args) == 0 {
			return false, fmt.Errorf("%w: usage: find <query>", errMissingArgument)
		}
		return false, c.runList(strings.Join(args, " "))

	case "show":
		return false, c.runShow(firstArg(args))

	case "copy":
		return false, c.runCopy(firstArg(args))

	case "delete":
		return false, c.runDelete(firstArg(args))

	case "exit", "quit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command: %s", cmd)
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
