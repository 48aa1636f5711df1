// Command twidge exposes the built-in widgets as terminal prompts: edit a
// string, fill a form, filter or pick from a list, or echo decoded keys.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/aidaco/twidge"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "twidge: stdin is not a terminal")
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "edit":
		err = edit(strings.Join(os.Args[2:], " "))
	case "editdict":
		err = editdict(arg())
	case "filterlist":
		err = filterlist(arg())
	case "retrievelist":
		err = retrievelist(arg())
	case "select":
		err = selectlist(arg())
	case "search":
		err = search(arg())
	case "echo":
		err = echo()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "twidge:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: twidge <command> [args]

commands:
  edit [text]            edit a string, print the result
  editdict k1,k2,...     fill a form with the given keys
  filterlist a,b,c,...   incrementally filter a list
  retrievelist a,b,...   pick list entries by number
  select a,b,c,...       multi-select from a list
  search file.csv        filter rows of a CSV file
  echo                   show decoded key events (ctrl+c to quit)`)
}

func arg() string {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}
	return os.Args[2]
}

// run wires the widget behind a ctrl+c escape and prints its result.
func run(w any) error {
	keymap, err := twidge.LoadKeymap()
	if err != nil {
		return err
	}
	var runner *twidge.Runner
	root := twidge.NewEscape(w, twidge.Key("ctrl+c"), func() { runner.Stop() })
	runner = twidge.NewRunner(root, twidge.WithKeymap(keymap))
	if err := runner.Run(); err != nil {
		return err
	}
	if result := runner.Result(); result != nil {
		fmt.Println(format(result))
	}
	return nil
}

func format(result any) string {
	switch v := result.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, "\n")
	case map[string]string:
		var b strings.Builder
		for k, val := range v {
			fmt.Fprintf(&b, "%s=%s\n", k, val)
		}
		return strings.TrimRight(b.String(), "\n")
	default:
		return fmt.Sprint(v)
	}
}

func edit(text string) error {
	return run(twidge.NewEditText(text))
}

func editdict(keys string) error {
	return run(twidge.NewEditDict(strings.Split(keys, ",")))
}

func filterlist(options string) error {
	return run(twidge.NewSearcher(strings.Split(options, ",")))
}

func retrievelist(options string) error {
	return run(twidge.NewIndexer(strings.Split(options, ",")))
}

func selectlist(options string) error {
	keymap, err := twidge.LoadKeymap()
	if err != nil {
		return err
	}
	var runner *twidge.Runner
	sel := twidge.NewSelector(func() { runner.Stop() }, strings.Split(options, ",")...)
	root := twidge.NewEscape(sel, twidge.Key("ctrl+c"), func() { runner.Stop() })
	runner = twidge.NewRunner(root, twidge.WithKeymap(keymap))
	if err := runner.Run(); err != nil {
		return err
	}
	fmt.Println(format(runner.Result()))
	return nil
}

func search(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return err
	}
	rows := make([]string, len(records))
	for i, rec := range records {
		rows[i] = strings.Join(rec, "\t")
	}
	return run(twidge.NewSearcher(rows))
}

func echo() error {
	return run(twidge.NewEcho())
}
