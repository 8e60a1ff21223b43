package main

import (
	"fmt"

	"citisevak-cli/models"

	"github.com/urfave/cli/v2"
)

var signupCommand = &cli.Command{
	Name:  "signup",
	Usage: "Create an account and log in",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "name", Required: true},
		&cli.StringFlag{Name: "email", Required: true},
		&cli.StringFlag{Name: "password", Required: true},
		&cli.StringFlag{Name: "district"},
	},
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}
		resp, err := a.client.Auth.Signup(cCtx.Context, models.SignupRequest{
			Name:     cCtx.String("name"),
			Email:    cCtx.String("email"),
			Password: cCtx.String("password"),
			District: cCtx.String("district"),
		})
		if err != nil {
			return err
		}
		if err := a.saveSession(); err != nil {
			return err
		}
		fmt.Printf("Welcome, %s\n", resp.User.Name)
		return nil
	},
}

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Log in with email and password",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "email", Required: true},
		&cli.StringFlag{Name: "password", Required: true},
	},
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}
		resp, err := a.client.Auth.Login(cCtx.Context, models.LoginRequest{
			Email:    cCtx.String("email"),
			Password: cCtx.String("password"),
		})
		if err != nil {
			return err
		}
		if err := a.saveSession(); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
		return nil
	},
}

var googleCommand = &cli.Command{
	Name:  "google",
	Usage: "Log in with a Google ID token",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "id-token", Required: true},
	},
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}
		resp, err := a.client.Auth.GoogleAuth(cCtx.Context, models.GoogleAuthRequest{
			Credential: cCtx.String("id-token"),
		})
		if err != nil {
			return err
		}
		if err := a.saveSession(); err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
		return nil
	},
}

var logoutCommand = &cli.Command{
	Name:  "logout",
	Usage: "Log out and forget the saved token",
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}
		// the local token is dropped even when the backend call fails
		logoutErr := a.client.Auth.Logout(cCtx.Context)
		if err := a.clearSession(); err != nil {
			return err
		}
		if logoutErr != nil {
			a.log.WithError(logoutErr).Warn("backend logout failed, local session cleared")
		}
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCommand = &cli.Command{
	Name:  "whoami",
	Usage: "Show the logged-in user",
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}
		if !a.client.Session().Authenticated() {
			fmt.Println("Not logged in")
			return nil
		}
		user, err := a.client.Users.Me(cCtx.Context)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role.Label())
		return nil
	},
}
