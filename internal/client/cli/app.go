// Package cli implements the interactive notekeeper command-line client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/client/api"
	"github.com/dmitrijs2005/notekeeper/internal/client/config"
	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
)

// noteAPI is the backend surface the CLI needs. The real api.Client
// satisfies it; tests can provide a stub.
type noteAPI interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) error
	ListNotes(ctx context.Context) ([]*models.Note, error)
	SearchNotes(ctx context.Context, query string) ([]*models.Note, error)
	ListFolders(ctx context.Context) ([]*models.Folder, error)
	ExportNotes(ctx context.Context) (string, error)
}

type App struct {
	config   *config.Config
	api      noteAPI
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerBaseURL),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Register(ctx, username, password); err != nil {
		fmt.Println("Registration failed:", err)
		return err
	}
	fmt.Println("Registered. You can now log in.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, username, password); err != nil {
		fmt.Println("Login failed:", err)
		return err
	}
	a.userName = username
	fmt.Println("Logged in as", username)
	return nil
}

func (a *App) List(ctx context.Context) error {
	notes, err := a.api.ListNotes(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	printNotes(notes)
	return nil
}

func (a *App) Search(ctx context.Context) error {
	query, err := GetSimpleText(a.reader, "Search for", os.Stdout)
	if err != nil {
		return err
	}
	notes, err := a.api.SearchNotes(ctx, query)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	printNotes(notes)
	return nil
}

func (a *App) Folders(ctx context.Context) error {
	folders, err := a.api.ListFolders(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	if len(folders) == 0 {
		fmt.Println("No folders yet.")
		return nil
	}
	for _, f := range folders {
		fmt.Printf("%s  %s (%s)\n", f.ID, f.Name, f.Color)
	}
	return nil
}

func printNotes(notes []*models.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return
	}
	for _, n := range notes {
		folder := "-"
		if n.FolderID != nil {
			folder = *n.FolderID
		}
		fmt.Printf("%s  %-30s folder:%s updated:%s\n",
			n.ID, n.Title, folder, n.UpdatedAt.Format("2006-01-02 15:04"))
	}
}
