package console

import (
	"context"

	"github.com/oksasatya/go-store-registry/internal/application"
	"github.com/oksasatya/go-store-registry/pkg/validation"
)

func (c *Console) userMenu(ctx context.Context) {
	for ctx.Err() == nil {
		c.println("")
		c.println("Manage users:")
		c.println("1. Add user")
		c.println("2. Update user")
		c.println("3. Show all users")
		c.println("4. Show one user")
		c.println("5. Delete user")
		c.println("0. Back")

		choice := c.promptString("Choose an action (0-5)")
		if c.readErr != nil {
			return
		}
		switch choice {
		case "1":
			c.addUser(ctx)
		case "2":
			c.updateUser(ctx)
		case "3":
			c.listUsers(ctx)
		case "4":
			c.showUser(ctx)
		case "5":
			c.deleteUser(ctx)
		case "0":
			return
		default:
			c.println("Invalid choice. Try again.")
		}
	}
}

func (c *Console) promptUserFields(view *application.UserView) {
	view.FirstName = c.promptString("Enter first name")
	view.LastName = c.promptString("Enter last name")
	view.StreetName = c.promptString("Enter street name")
	view.PostalCode = c.promptString("Enter postal code")
	view.City = c.promptString("Enter city")
	view.PhoneNumber = c.promptString("Enter phone number")
	view.RoleName = c.promptString("Enter role name")
}

func (c *Console) addUser(ctx context.Context) {
	var view application.UserView
	c.promptUserFields(&view)
	view.Email = c.promptString("Enter email")
	view.Password = c.promptString("Enter password")

	if err := validation.Struct(view); err != nil {
		c.println("Invalid input: %v.", err)
		return
	}
	if c.users.CreateUser(ctx, view) {
		c.println("User added successfully!")
	} else {
		c.println("Could not add user; a user with that email may already exist.")
	}
}

func (c *Console) updateUser(ctx context.Context) {
	email := c.promptString("Enter email to find user for update")
	if !c.users.UserExists(ctx, email) {
		c.println("User with email %s not found.", email)
		return
	}

	c.println("User found! Enter new details:")
	view := application.UserView{Email: email}
	c.promptUserFields(&view)
	view.Password = c.promptString("Enter new password")

	if err := validation.Struct(view); err != nil {
		c.println("Invalid input: %v.", err)
		return
	}
	if c.users.UpdateUser(ctx, view) {
		c.println("User updated successfully!")
	} else {
		c.println("Error updating user.")
	}
}

func (c *Console) listUsers(ctx context.Context) {
	users, err := c.users.GetAllUsers(ctx)
	if err != nil || len(users) == 0 {
		c.println("Users not found.")
		return
	}
	for _, u := range users {
		c.println("Name: %s %s, Email: %s", u.FirstName, u.LastName, u.Email)
	}
}

func (c *Console) showUser(ctx context.Context) {
	email := c.promptString("Enter email to show user information")
	if !c.users.UserExists(ctx, email) {
		c.println("User with email %s not found.", email)
		return
	}
	u, err := c.users.GetOneUser(ctx, email)
	if err != nil {
		c.println("User with email %s not found.", email)
		return
	}
	c.println("Name: %s %s", u.FirstName, u.LastName)
	c.println("Email: %s", u.Email)
	c.println("Phone: %s", u.PhoneNumber)
	c.println("Role: %s", u.RoleName)
	c.println("Address: %s, %s %s", u.StreetName, u.PostalCode, u.City)
}

func (c *Console) deleteUser(ctx context.Context) {
	email := c.promptString("Enter email of the user to delete")
	if c.users.DeleteUser(ctx, application.UserView{Email: email}) {
		c.println("User deleted successfully!")
	} else {
		c.println("User with email %s not found.", email)
	}
}
