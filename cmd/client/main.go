package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/shahedzaman612/Inventory-Backend/internal/client"
)

const usage = `usage: client [-server URL] <command> [args]

commands:
  register <username> <email> <password>
  login <email> <password>
  inventories
  my
  search <query>
  stats
  create-inventory <title> [description] [category]
  items <inventoryId>
  add-item <inventoryId> <itemId> <name> <quantity>
`

func main() {
	server := flag.String("server", "http://localhost:8080", "base URL of the inventory backend")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	token, _ := client.LoadToken() // анонимные команды работают без токена
	c := client.New(*server, token)

	if err := run(c, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(c *client.Client, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		if len(rest) != 3 {
			return fmt.Errorf("register <username> <email> <password>")
		}
		msg, err := c.Register(rest[0], rest[1], rest[2])
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil

	case "login":
		if len(rest) != 2 {
			return fmt.Errorf("login <email> <password>")
		}
		token, err := c.Login(rest[0], rest[1])
		if err != nil {
			return err
		}
		if err := client.SaveToken(token); err != nil {
			return fmt.Errorf("save token: %w", err)
		}
		fmt.Println("logged in")
		return nil

	case "inventories":
		return printJSON(c.Inventories())

	case "my":
		return printJSON(c.MyInventories())

	case "search":
		if len(rest) != 1 {
			return fmt.Errorf("search <query>")
		}
		return printJSON(c.SearchInventories(rest[0]))

	case "stats":
		return printJSON(c.Stats())

	case "create-inventory":
		if len(rest) < 1 {
			return fmt.Errorf("create-inventory <title> [description] [category]")
		}
		description, category := "", ""
		if len(rest) > 1 {
			description = rest[1]
		}
		if len(rest) > 2 {
			category = rest[2]
		}
		return printJSON(c.CreateInventory(rest[0], description, category, nil))

	case "items":
		if len(rest) != 1 {
			return fmt.Errorf("items <inventoryId>")
		}
		return printJSON(c.Items(rest[0]))

	case "add-item":
		if len(rest) != 4 {
			return fmt.Errorf("add-item <inventoryId> <itemId> <name> <quantity>")
		}
		qty, err := strconv.Atoi(rest[3])
		if err != nil {
			return fmt.Errorf("quantity must be an integer")
		}
		return printJSON(c.AddItem(rest[0], rest[1], rest[2], qty))

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printJSON(raw []byte, err error) error {
	if err != nil {
		return err
	}
	var pretty bytes.Buffer
	if json.Indent(&pretty, raw, "", "  ") == nil {
		fmt.Println(pretty.String())
		return nil
	}
	fmt.Println(string(raw))
	return nil
}
