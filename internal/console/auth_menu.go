package console

// authMenu handles login and registration. Returns false when input ends or
// the user exits.
func (c *Console) authMenu() bool {
	c.printf("\n--- Welcome ---\n")
	c.printf("1. Login\n")
	c.printf("2. Register\n")
	c.printf("0. Exit\n")

	choice, ok := c.promptInt("Select an option")
	if !ok {
		return false
	}

	switch choice {
	case 1:
		return c.login()
	case 2:
		return c.register()
	case 0:
		return false
	default:
		c.printf("Unknown option\n")
	}
	return true
}

func (c *Console) login() bool {
	username, ok := c.prompt("Username")
	if !ok {
		return false
	}
	password, ok := c.prompt("Password")
	if !ok {
		return false
	}

	loggedIn, err := c.auth.Login(c.sess, username, password)
	if err != nil {
		c.reportError(err)
		return true
	}
	if !loggedIn {
		c.printf("Invalid username or password\n")
		return true
	}

	user, _ := c.auth.CurrentUser(c.sess)
	c.printf("Welcome, %s %s\n", user.Name, user.Surname)
	c.log.Info("user logged in", "username", user.Username)
	return true
}

func (c *Console) register() bool {
	username, ok := c.prompt("Username")
	if !ok {
		return false
	}
	password, ok := c.prompt("Password")
	if !ok {
		return false
	}
	email, ok := c.prompt("Email")
	if !ok {
		return false
	}
	name, ok := c.prompt("First name")
	if !ok {
		return false
	}
	surname, ok := c.prompt("Last name")
	if !ok {
		return false
	}
	role, ok := c.pickRole()
	if !ok {
		return false
	}

	user, err := c.auth.Register(username, password, email, name, surname, role)
	if err != nil {
		c.reportError(err)
		return true
	}

	c.printf("Registered user %s (id %d). You can now log in.\n", user.Username, user.ID)
	return true
}

// userMenu lists accounts and toggles the enabled flag. Admin only.
func (c *Console) userMenu() bool {
	for {
		c.printf("\n--- Users ---\n")
		c.printf("1. List users\n")
		c.printf("2. Enable user\n")
		c.printf("3. Disable user\n")
		c.printf("0. Back\n")

		choice, ok := c.promptInt("Select an option")
		if !ok {
			return false
		}

		switch choice {
		case 1:
			users, err := c.auth.ListUsers()
			if err != nil {
				c.reportError(err)
				continue
			}
			for _, u := range users {
				state := "enabled"
				if !u.Enabled {
					state = "disabled"
				}
				c.printf("[%d] %s <%s> %s (%s)\n", u.ID, u.Username, u.Email, u.Role, state)
			}
		case 2, 3:
			id, ok := c.promptUint("User id")
			if !ok {
				return false
			}
			user, err := c.auth.SetUserEnabled(id, choice == 2)
			if err != nil {
				c.reportError(err)
				continue
			}
			c.printf("User %s updated\n", user.Username)
		case 0:
			return true
		default:
			c.printf("Unknown option\n")
		}
	}
}
