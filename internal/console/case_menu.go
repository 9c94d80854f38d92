package console

import (
	"github.com/ahmetberacelik/legalcase/internal/database"
)

func (c *Console) caseMenu() bool {
	for {
		c.printf("\n--- Cases ---\n")
		c.printf("1. Create case\n")
		c.printf("2. Update case\n")
		c.printf("3. Delete case\n")
		c.printf("4. Find by case number\n")
		c.printf("5. List all cases\n")
		c.printf("6. List by status\n")
		c.printf("7. Search by title\n")
		c.printf("8. Add client to case\n")
		c.printf("9. Remove client from case\n")
		c.printf("10. Clients of a case\n")
		c.printf("0. Back\n")

		choice, ok := c.promptInt("Select an option")
		if !ok {
			return false
		}

		switch choice {
		case 1:
			if !c.createCase() {
				return false
			}
		case 2:
			if !c.updateCase() {
				return false
			}
		case 3:
			id, ok := c.promptUint("Case id")
			if !ok {
				return false
			}
			if err := c.cases.DeleteCase(id); err != nil {
				c.reportError(err)
			} else {
				c.printf("Case deleted\n")
			}
		case 4:
			number, ok := c.prompt("Case number")
			if !ok {
				return false
			}
			record, err := c.cases.GetCaseByCaseNumber(number)
			if err != nil {
				c.reportError(err)
			} else if record == nil {
				c.printf("No case found\n")
			} else {
				c.printCase(record)
			}
		case 5:
			records, err := c.cases.GetAllCases()
			if err != nil {
				c.reportError(err)
			} else {
				c.printCases(records)
			}
		case 6:
			status, ok := c.pickCaseStatus()
			if !ok {
				return false
			}
			records, err := c.cases.GetCasesByStatus(status)
			if err != nil {
				c.reportError(err)
			} else {
				c.printCases(records)
			}
		case 7:
			query, ok := c.prompt("Title contains")
			if !ok {
				return false
			}
			records, err := c.cases.SearchCasesByTitle(query)
			if err != nil {
				c.reportError(err)
			} else {
				c.printCases(records)
			}
		case 8, 9:
			caseID, ok := c.promptUint("Case id")
			if !ok {
				return false
			}
			clientID, ok := c.promptUint("Client id")
			if !ok {
				return false
			}
			var err error
			if choice == 8 {
				err = c.cases.AddClientToCase(caseID, clientID)
			} else {
				err = c.cases.RemoveClientFromCase(caseID, clientID)
			}
			if err != nil {
				c.reportError(err)
			} else {
				c.printf("Done\n")
			}
		case 10:
			caseID, ok := c.promptUint("Case id")
			if !ok {
				return false
			}
			clients, err := c.cases.GetClientsForCase(caseID)
			if err != nil {
				c.reportError(err)
			} else if len(clients) == 0 {
				c.printf("No clients linked\n")
			} else {
				for _, cl := range clients {
					c.printf("[%d] %s %s\n", cl.ID, cl.Name, cl.Surname)
				}
			}
		case 0:
			return true
		default:
			c.printf("Unknown option\n")
		}
	}
}

func (c *Console) createCase() bool {
	number, ok := c.prompt("Case number")
	if !ok {
		return false
	}
	title, ok := c.prompt("Title")
	if !ok {
		return false
	}
	caseType, ok := c.pickCaseType()
	if !ok {
		return false
	}
	description, ok := c.prompt("Description")
	if !ok {
		return false
	}

	record, err := c.cases.CreateCase(number, title, caseType, description)
	if err != nil {
		c.reportError(err)
		return true
	}
	c.printf("Created case %s (id %d)\n", record.CaseNumber, record.ID)
	return true
}

func (c *Console) updateCase() bool {
	id, ok := c.promptUint("Case id")
	if !ok {
		return false
	}
	number, ok := c.prompt("Case number")
	if !ok {
		return false
	}
	title, ok := c.prompt("Title")
	if !ok {
		return false
	}
	caseType, ok := c.pickCaseType()
	if !ok {
		return false
	}
	description, ok := c.prompt("Description")
	if !ok {
		return false
	}
	status, ok := c.pickCaseStatus()
	if !ok {
		return false
	}

	record, err := c.cases.UpdateCase(id, number, title, caseType, description, status)
	if err != nil {
		c.reportError(err)
		return true
	}
	c.printf("Updated case %s\n", record.CaseNumber)
	return true
}

func (c *Console) printCase(record *database.Case) {
	c.printf("[%d] %s | %s | %s | %s\n", record.ID, record.CaseNumber, record.Title, record.Type, record.Status)
	if record.Description != "" {
		c.printf("    %s\n", record.Description)
	}
}

func (c *Console) printCases(records []database.Case) {
	if len(records) == 0 {
		c.printf("No cases found\n")
		return
	}
	for i := range records {
		c.printCase(&records[i])
	}
}
