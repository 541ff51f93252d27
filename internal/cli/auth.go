package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	user, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	log.Printf("Welcome back, %s!", user.Name)
	return nil
}

func (a *App) Register(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	user, err := a.authService.SignUp(ctx, name, email, string(password))
	if err != nil {
		log.Printf("Signup unsuccessfull: %s", err.Error())
		return err
	}

	log.Printf("Welcome to NovaBiz, %s!", user.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	log.Println("Logged out")
	return nil
}
