// Package shell runs the interactive numbered menu over a phone book.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vortex-fintech/phonebook/contact"
	errs "github.com/vortex-fintech/phonebook/errors"
	"github.com/vortex-fintech/phonebook/logger"
	"github.com/vortex-fintech/phonebook/phonebook"
)

// Book is the part of *phonebook.Repository the menu drives.
type Book interface {
	List() []*contact.Entry
	Find(q phonebook.Query) []*contact.Entry
	Add(name, surname, phone, birthdate string) error
	Delete(name, surname string) error
	Update(name, surname string, p contact.Patch) error
	GetAge(name, surname string) (int, error)
}

const separator = "------------------------------"

const menu = `
Phone book operations:
1. List all entries
2. Search entries
3. Add a new entry
4. Delete an entry
5. Update an entry
6. Get a person's age
7. Exit
`

type Shell struct {
	book Book
	in   *bufio.Scanner
	out  io.Writer
	log  logger.LoggerInterface
}

func New(book Book, in io.Reader, out io.Writer, log logger.LoggerInterface) *Shell {
	if log == nil {
		log = logger.Nop()
	}
	return &Shell{book: book, in: bufio.NewScanner(in), out: out, log: log}
}

// errExit ends the loop without reporting an error.
var errExit = errors.New("exit")

// Run shows the menu until the user picks exit, input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(s.out, menu)
		choice, ok := s.prompt("\nEnter your choice (1-7): ")
		if !ok {
			return s.in.Err()
		}

		err := s.dispatch(choice)
		switch {
		case errors.Is(err, errExit):
			return nil
		case errors.Is(err, io.EOF):
			return s.in.Err()
		case userError(err):
			s.log.Debugw("menu command rejected", "choice", choice, "err", err)
			fmt.Fprintf(s.out, "Error: %s\n", errs.ToErrorResponse(err).Human())
		case err != nil:
			s.log.Errorw("menu command failed", "choice", choice, "err", err)
			fmt.Fprintf(s.out, "Error: %s\n", errs.ToErrorResponse(err).Human())
		}
	}
}

func (s *Shell) dispatch(choice string) error {
	switch choice {
	case "1":
		s.printEntries(s.book.List(), "The phone book is empty")
		return nil
	case "2":
		return s.search()
	case "3":
		return s.add()
	case "4":
		return s.delete()
	case "5":
		return s.update()
	case "6":
		return s.age()
	case "7":
		return errExit
	default:
		fmt.Fprintln(s.out, "Unknown choice, enter a number from 1 to 7")
		return nil
	}
}

func (s *Shell) search() error {
	fmt.Fprintln(s.out, "\nEnter search criteria (press Enter to skip):")
	fields, err := s.ask("Name: ", "Surname: ", "Phone: ", "Birthdate (DD.MM.YYYY): ")
	if err != nil {
		return err
	}
	q := phonebook.Query{Name: fields[0], Surname: fields[1], Phone: fields[2], Birthdate: fields[3]}
	s.printEntries(s.book.Find(q), "No entries found")
	return nil
}

func (s *Shell) add() error {
	fmt.Fprintln(s.out, "\nEnter the new entry:")
	fields, err := s.ask("Name: ", "Surname: ", "Phone: ", "Birthdate (DD.MM.YYYY, optional): ")
	if err != nil {
		return err
	}
	if err := s.book.Add(fields[0], fields[1], fields[2], fields[3]); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Entry added")
	return nil
}

func (s *Shell) delete() error {
	key, err := s.ask("\nEnter name: ", "Enter surname: ")
	if err != nil {
		return err
	}
	if err := s.book.Delete(key[0], key[1]); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Entry deleted")
	return nil
}

func (s *Shell) update() error {
	key, err := s.ask("\nEnter the name of the entry to update: ", "Enter the surname of the entry to update: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\nEnter new values (press Enter to skip):")
	fields, err := s.ask("New name: ", "New surname: ", "New phone: ", "New birthdate (DD.MM.YYYY): ")
	if err != nil {
		return err
	}
	p := contact.Patch{
		Name:      optional(fields[0]),
		Surname:   optional(fields[1]),
		Phone:     optional(fields[2]),
		Birthdate: optional(fields[3]),
	}
	if p.IsEmpty() {
		fmt.Fprintln(s.out, "Nothing to update")
		return nil
	}

	if err := s.book.Update(key[0], key[1], p); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Entry updated")
	return nil
}

func (s *Shell) age() error {
	key, err := s.ask("\nEnter name: ", "Enter surname: ")
	if err != nil {
		return err
	}
	age, err := s.book.GetAge(key[0], key[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Age: %d\n", age)
	return nil
}

func (s *Shell) printEntries(entries []*contact.Entry, empty string) {
	if len(entries) == 0 {
		fmt.Fprintln(s.out, empty)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(s.out, "\nName: %s\n", e.Name)
		fmt.Fprintf(s.out, "Surname: %s\n", e.Surname)
		fmt.Fprintf(s.out, "Phone: %s\n", e.Phone)
		if e.HasBirthdate() {
			fmt.Fprintf(s.out, "Birthdate: %s\n", e.Birthdate)
		}
		fmt.Fprintln(s.out, separator)
	}
}

// ask prints each prompt in turn and collects the trimmed answers.
// Input ending early yields io.EOF.
func (s *Shell) ask(prompts ...string) ([]string, error) {
	out := make([]string, 0, len(prompts))
	for _, p := range prompts {
		v, ok := s.prompt(p)
		if !ok {
			return nil, io.EOF
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Shell) prompt(p string) (string, bool) {
	fmt.Fprint(s.out, p)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// userError reports errors caused by what the user typed, as opposed to
// I/O failures while saving.
func userError(err error) bool {
	return errs.IsValidation(err) || errs.IsDuplicate(err) || errs.IsNotFound(err)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
