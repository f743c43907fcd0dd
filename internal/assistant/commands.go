package assistant

import (
	"fmt"
	"strings"

	"github.com/andy/contactbook/internal/domain"
)

type handlerFunc func(a *Assistant, args []string) (string, error)

type command struct {
	name    string
	usage   string
	minArgs int
	run     handlerFunc
}

// commandTable lists every command in the order help shows them
func commandTable() []command {
	return []command{
		{"hello", "hello", 0, hello},
		{"add", "add <name> <phone>", 2, addContact},
		{"change", "change <name> <old phone> <new phone>", 3, changeContact},
		{"phone", "phone <name>", 1, showPhone},
		{"remove-phone", "remove-phone <name> <phone>", 2, removePhone},
		{"delete", "delete <name>", 1, deleteContact},
		{"all", "all", 0, showAll},
		{"add-birthday", "add-birthday <name> <DD.MM.YYYY>", 2, addBirthday},
		{"show-birthday", "show-birthday <name>", 1, showBirthday},
		{"birthdays", "birthdays", 0, birthdays},
		{"help", "help", 0, help},
		{"close", "close", 0, nil},
		{"exit", "exit", 0, nil},
	}
}

func hello(_ *Assistant, _ []string) (string, error) {
	return "How can I help you?", nil
}

func addContact(a *Assistant, args []string) (string, error) {
	created, err := a.contacts.AddContact(args[0], args[1])
	if err != nil {
		return "", err
	}
	if created {
		return "Contact added.", nil
	}
	return "Contact updated.", nil
}

func changeContact(a *Assistant, args []string) (string, error) {
	ok, err := a.contacts.ChangePhone(args[0], args[1], args[2])
	if err != nil {
		return "", err
	}
	if !ok {
		return "Phone not found.", nil
	}
	return "Phone updated.", nil
}

func showPhone(a *Assistant, args []string) (string, error) {
	phones, err := a.contacts.Phones(args[0])
	if err != nil {
		return "", err
	}
	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return "Phones: " + strings.Join(values, ", "), nil
}

func removePhone(a *Assistant, args []string) (string, error) {
	ok, err := a.contacts.RemovePhone(args[0], args[1])
	if err != nil {
		return "", err
	}
	if !ok {
		return "Phone not found.", nil
	}
	return "Phone removed.", nil
}

func deleteContact(a *Assistant, args []string) (string, error) {
	if err := a.contacts.DeleteContact(args[0]); err != nil {
		return "", err
	}
	return "Contact deleted.", nil
}

func showAll(a *Assistant, _ []string) (string, error) {
	records := a.contacts.Contacts()
	if len(records) == 0 {
		return "Address book is empty.", nil
	}
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func addBirthday(a *Assistant, args []string) (string, error) {
	if err := a.contacts.SetBirthday(args[0], args[1]); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday added for %s.", args[0]), nil
}

func showBirthday(a *Assistant, args []string) (string, error) {
	birthday, err := a.contacts.ShowBirthday(args[0])
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday of %s: %s", args[0], birthday), nil
}

func birthdays(a *Assistant, _ []string) (string, error) {
	upcoming := a.contacts.UpcomingBirthdays()
	if len(upcoming) == 0 {
		return "No upcoming birthdays.", nil
	}
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf("%s: %s", u.Name, u.CongratulationDate.Format(domain.DateLayout))
	}
	return strings.Join(lines, "\n"), nil
}

func help(a *Assistant, _ []string) (string, error) {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, c := range a.commands {
		b.WriteString("\n  ")
		b.WriteString(c.usage)
	}
	return b.String(), nil
}
