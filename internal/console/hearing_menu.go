package console

import (
	"github.com/ahmetberacelik/legalcase/internal/database"
)

func (c *Console) hearingMenu() bool {
	for {
		c.printf("\n--- Hearings ---\n")
		c.printf("1. Schedule hearing\n")
		c.printf("2. Reschedule hearing\n")
		c.printf("3. Change hearing status\n")
		c.printf("4. Delete hearing\n")
		c.printf("5. List all hearings\n")
		c.printf("6. Hearings of a case\n")
		c.printf("7. Hearings in a date range\n")
		c.printf("8. Upcoming hearings\n")
		c.printf("0. Back\n")

		choice, ok := c.promptInt("Select an option")
		if !ok {
			return false
		}

		switch choice {
		case 1:
			if !c.createHearing() {
				return false
			}
		case 2:
			id, ok := c.promptUint("Hearing id")
			if !ok {
				return false
			}
			newDate, ok := c.promptTime("New date")
			if !ok {
				return false
			}
			hearing, err := c.hearings.RescheduleHearing(id, newDate)
			if err != nil {
				c.reportError(err)
			} else {
				c.printHearing(hearing)
			}
		case 3:
			id, ok := c.promptUint("Hearing id")
			if !ok {
				return false
			}
			status, ok := c.pickHearingStatus()
			if !ok {
				return false
			}
			hearing, err := c.hearings.UpdateHearingStatus(id, status)
			if err != nil {
				c.reportError(err)
			} else {
				c.printHearing(hearing)
			}
		case 4:
			id, ok := c.promptUint("Hearing id")
			if !ok {
				return false
			}
			if err := c.hearings.DeleteHearing(id); err != nil {
				c.reportError(err)
			} else {
				c.printf("Hearing deleted\n")
			}
		case 5:
			records, err := c.hearings.GetAllHearings()
			if err != nil {
				c.reportError(err)
			} else {
				c.printHearings(records)
			}
		case 6:
			caseID, ok := c.promptUint("Case id")
			if !ok {
				return false
			}
			records, err := c.hearings.GetHearingsByCase(caseID)
			if err != nil {
				c.reportError(err)
			} else {
				c.printHearings(records)
			}
		case 7:
			start, ok := c.promptTime("Start date")
			if !ok {
				return false
			}
			end, ok := c.promptTime("End date")
			if !ok {
				return false
			}
			records, err := c.hearings.GetHearingsByDateRange(start, end)
			if err != nil {
				c.reportError(err)
			} else {
				c.printHearings(records)
			}
		case 8:
			records, err := c.hearings.GetUpcomingHearings()
			if err != nil {
				c.reportError(err)
			} else {
				c.printHearings(records)
			}
		case 0:
			return true
		default:
			c.printf("Unknown option\n")
		}
	}
}

func (c *Console) createHearing() bool {
	caseID, ok := c.promptUint("Case id")
	if !ok {
		return false
	}
	date, ok := c.promptTime("Hearing date")
	if !ok {
		return false
	}
	judge, ok := c.prompt("Judge")
	if !ok {
		return false
	}
	location, ok := c.prompt("Location")
	if !ok {
		return false
	}
	notes, ok := c.prompt("Notes")
	if !ok {
		return false
	}

	hearing, err := c.hearings.CreateHearing(caseID, date, judge, location, notes)
	if err != nil {
		c.reportError(err)
		return true
	}
	c.printf("Scheduled hearing (id %d)\n", hearing.ID)
	return true
}

func (c *Console) printHearing(h *database.Hearing) {
	c.printf("[%d] case %d | %s | %s | %s | %s\n",
		h.ID, h.CaseID, h.DateTime().Format("2006-01-02 15:04"), h.Judge, h.Location, h.Status)
	if h.Notes != "" {
		c.printf("    %s\n", h.Notes)
	}
}

func (c *Console) printHearings(records []database.Hearing) {
	if len(records) == 0 {
		c.printf("No hearings found\n")
		return
	}
	for i := range records {
		c.printHearing(&records[i])
	}
}
