package console

import (
	"github.com/ahmetberacelik/legalcase/internal/database"
)

func (c *Console) clientMenu() bool {
	for {
		c.printf("\n--- Clients ---\n")
		c.printf("1. Create client\n")
		c.printf("2. Update client\n")
		c.printf("3. Delete client\n")
		c.printf("4. List all clients\n")
		c.printf("5. Search by name\n")
		c.printf("6. Cases of a client\n")
		c.printf("0. Back\n")

		choice, ok := c.promptInt("Select an option")
		if !ok {
			return false
		}

		switch choice {
		case 1:
			if !c.createClient() {
				return false
			}
		case 2:
			if !c.updateClient() {
				return false
			}
		case 3:
			id, ok := c.promptUint("Client id")
			if !ok {
				return false
			}
			if err := c.clients.DeleteClient(id); err != nil {
				c.reportError(err)
			} else {
				c.printf("Client deleted\n")
			}
		case 4:
			records, err := c.clients.GetAllClients()
			if err != nil {
				c.reportError(err)
			} else {
				c.printClients(records)
			}
		case 5:
			query, ok := c.prompt("Name contains")
			if !ok {
				return false
			}
			records, err := c.clients.SearchClientsByName(query)
			if err != nil {
				c.reportError(err)
			} else {
				c.printClients(records)
			}
		case 6:
			id, ok := c.promptUint("Client id")
			if !ok {
				return false
			}
			records, err := c.cases.GetCasesForClient(id)
			if err != nil {
				c.reportError(err)
			} else {
				c.printCases(records)
			}
		case 0:
			return true
		default:
			c.printf("Unknown option\n")
		}
	}
}

func (c *Console) createClient() bool {
	name, ok := c.prompt("First name")
	if !ok {
		return false
	}
	surname, ok := c.prompt("Last name")
	if !ok {
		return false
	}
	email, ok := c.promptOptional("Email")
	if !ok {
		return false
	}
	phone, ok := c.prompt("Phone")
	if !ok {
		return false
	}
	address, ok := c.prompt("Address")
	if !ok {
		return false
	}

	client, err := c.clients.CreateClient(name, surname, email, phone, address)
	if err != nil {
		c.reportError(err)
		return true
	}
	c.printf("Created client %s %s (id %d)\n", client.Name, client.Surname, client.ID)
	return true
}

func (c *Console) updateClient() bool {
	id, ok := c.promptUint("Client id")
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
	email, ok := c.promptOptional("Email")
	if !ok {
		return false
	}
	phone, ok := c.prompt("Phone")
	if !ok {
		return false
	}
	address, ok := c.prompt("Address")
	if !ok {
		return false
	}

	client, err := c.clients.UpdateClient(id, name, surname, email, phone, address)
	if err != nil {
		c.reportError(err)
		return true
	}
	c.printf("Updated client %s %s\n", client.Name, client.Surname)
	return true
}

func (c *Console) printClients(records []database.Client) {
	if len(records) == 0 {
		c.printf("No clients found\n")
		return
	}
	for _, cl := range records {
		email := "-"
		if cl.Email != nil {
			email = *cl.Email
		}
		c.printf("[%d] %s %s | %s | %s\n", cl.ID, cl.Name, cl.Surname, email, cl.Phone)
	}
}
