package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mjimenezh/coursekeeper/internal/client/models"
)

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Please enter your email:", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	password, err := GetPassword(os.Stdout, "Please enter your password: ")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	if !a.session.Login(ctx, email, password) {
		fmt.Println(a.session.Err())
		return
	}

	user := a.session.User()
	fmt.Printf("Welcome back, %s!\n", user.FullName)
	a.navigate(ctx, a.landingPath())
}

func (a *App) Register(ctx context.Context) {
	firstName, err := GetSimpleText(a.reader, "Please enter your first name:", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	lastName, err := GetSimpleText(a.reader, "Please enter your last name:", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Please enter your email:", os.Stdout)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	password, err := GetPassword(os.Stdout, "Please choose a password: ")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	confirm, err := GetPassword(os.Stdout, "Please confirm the password: ")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if password != confirm {
		fmt.Println("Passwords do not match")
		return
	}

	req := models.RegisterRequest{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	}
	if !a.session.Register(ctx, req) {
		fmt.Println(a.session.Err())
		return
	}

	user := a.session.User()
	fmt.Printf("Welcome, %s!\n", user.FullName)
	a.navigate(ctx, a.landingPath())
}

func (a *App) Logout(ctx context.Context) {
	a.session.Logout(ctx)
	a.lessons.Clear()
	a.currentCourse = ""
	fmt.Println("Logged out")
	a.navigate(ctx, a.landingPath())
}

func (a *App) WhoAmI(ctx context.Context) {
	user := a.session.User()
	if user == nil {
		fmt.Println("Not logged in")
		return
	}
	fmt.Printf("%s <%s>\n", user.FullName, user.Email)
	if len(user.Roles) > 0 {
		fmt.Println("Roles:", user.Roles)
	}
	if exp := a.session.TokenExpiry(); !exp.IsZero() {
		fmt.Println("Session expires:", exp.Format(time.RFC1123))
	}
}
