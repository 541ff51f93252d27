package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/novabiz/internal/common"
	"github.com/dmitrijs2005/novabiz/internal/models"
)

// Profile prints the session user's directory record.
func (a *App) Profile(ctx context.Context) error {

	user := a.session.Current()
	if user == nil {
		log.Printf("error: %v", common.ErrorNotAuthenticated)
		return common.ErrorNotAuthenticated
	}

	printlnFn("Name:  " + user.Name)
	printlnFn("Email: " + user.Email)
	if user.Bio != "" {
		printlnFn("Bio:   " + user.Bio)
	}
	if len(user.Interests) > 0 {
		printlnFn("Interests: " + strings.Join(user.Interests, ", "))
	}
	return nil
}

// EditProfile edits name, bio and interests. Interests are toggled by
// number from the fixed category list; email and password stay as they are.
func (a *App) EditProfile(ctx context.Context) error {

	user := a.session.Current()
	if user == nil {
		log.Printf("error: %v", common.ErrorNotAuthenticated)
		return common.ErrorNotAuthenticated
	}

	name, err := GetSimpleText(a.reader, fmt.Sprintf("Name (empty keeps %q)", user.Name), os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if name == "" {
		name = user.Name
	}

	bio, err := GetMultiline(a.reader, "Bio", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if bio == "" {
		bio = user.Bio
	}

	scratch := models.User{Interests: append([]string{}, user.Interests...)}
	for {
		for n, cat := range models.InterestCategories {
			mark := " "
			if scratch.HasInterest(cat) {
				mark = "x"
			}
			printlnFn(fmt.Sprintf("  [%s] %d. %s", mark, n+1, cat))
		}
		choice, err := GetSimpleText(a.reader, "Toggle interest by number (empty to finish)", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		if choice == "" {
			break
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(models.InterestCategories) {
			printlnFn("Unknown category")
			continue
		}
		scratch.ToggleInterest(models.InterestCategories[n-1])
	}

	updated, err := a.authService.UpdateProfile(ctx, name, bio, scratch.Interests)
	if err != nil {
		log.Printf("Could not update profile: %s", err.Error())
		return err
	}

	log.Printf("Profile updated, %s", updated.Name)
	return nil
}
