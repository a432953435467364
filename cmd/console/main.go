// Command console is a terminal front end for the HR record store. It mounts
// one view at a time and re-renders after every command, the way the web
// dashboard switches tabs.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/subosito/gotenv"

	"github.com/devmajed/hr-admin/internal/config"
	"github.com/devmajed/hr-admin/internal/recordstore"
	"github.com/devmajed/hr-admin/internal/view"
	"github.com/devmajed/hr-admin/pkg/utils"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	gotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: "stderr",
		Format:     "console",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := recordstore.NewClient(recordstore.Config{
		BaseURL: cfg.RecordStore.BaseURL,
		Timeout: cfg.RecordStore.Timeout,
	}, logger)

	ctx := context.Background()
	shell := view.NewShell(client, logger)
	shell.Switch(ctx, view.TabDashboard)

	console := &console{shell: shell, out: os.Stdout}
	console.render()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprintf(os.Stdout, "\n[%s]> ", shell.Active)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		console.handle(ctx, line)
		console.render()
	}
}

type console struct {
	shell *view.Shell
	out   io.Writer
}

func (c *console) handle(ctx context.Context, line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "tab":
		if len(args) != 1 {
			fmt.Fprintln(c.out, "usage: tab dashboard|employees|claims|flights")
			return
		}
		c.shell.Switch(ctx, view.Tab(args[0]))
	case "filter":
		if c.shell.Directory == nil {
			fmt.Fprintln(c.out, "filter only applies on the employees tab")
			return
		}
		c.shell.Directory.SetFilter(ctx, strings.Join(args, " "))
	case "medical", "vehicle":
		if c.shell.Claims == nil {
			fmt.Fprintln(c.out, "sub-tabs only apply on the claims tab")
			return
		}
		c.shell.Claims.Switch(view.ClaimsTab(cmd))
	case "approve", "reject":
		if len(args) != 1 {
			fmt.Fprintf(c.out, "usage: %s <id>\n", cmd)
			return
		}
		c.decide(ctx, cmd, args[0])
	case "add":
		if c.shell.Directory == nil {
			fmt.Fprintln(c.out, "add only applies on the employees tab")
			return
		}
		c.shell.Directory.OpenAdd()
	case "edit":
		if c.shell.Directory == nil {
			fmt.Fprintln(c.out, "edit only applies on the employees tab")
			return
		}
		if len(args) != 1 {
			fmt.Fprintln(c.out, "usage: edit <id>")
			return
		}
		c.edit(args[0])
	case "set":
		if c.shell.Directory == nil || !c.shell.Directory.FormOpen {
			fmt.Fprintln(c.out, "set only applies while the employee form is open")
			return
		}
		if len(args) < 2 {
			fmt.Fprintln(c.out, "usage: set <field> <value>")
			return
		}
		c.setField(args[0], strings.Join(args[1:], " "))
	case "submit":
		if c.shell.Directory == nil || !c.shell.Directory.FormOpen {
			fmt.Fprintln(c.out, "submit only applies while the employee form is open")
			return
		}
		if alert := c.shell.Directory.Submit(ctx); alert != nil {
			fmt.Fprintf(c.out, "!! %s\n", alert.Message)
		}
	case "cancel":
		if c.shell.Directory == nil || !c.shell.Directory.FormOpen {
			fmt.Fprintln(c.out, "cancel only applies while the employee form is open")
			return
		}
		c.shell.Directory.CloseForm()
	case "help":
		fmt.Fprintln(c.out, "commands: tab <name>, filter <department>, add, edit <id>, set <field> <value>, submit, cancel, medical, vehicle, approve <id>, reject <id>, quit")
	default:
		fmt.Fprintf(c.out, "unknown command %q (try help)\n", cmd)
	}
}

func (c *console) decide(ctx context.Context, cmd, id string) {
	var alert *view.Alert
	switch {
	case c.shell.Claims != nil && c.shell.Claims.ActiveTab == view.TabMedical:
		if cmd == "approve" {
			alert = c.shell.Claims.ApproveMedical(ctx, id)
		} else {
			alert = c.shell.Claims.RejectMedical(ctx, id)
		}
	case c.shell.Claims != nil:
		if cmd == "approve" {
			alert = c.shell.Claims.ApproveVehicle(ctx, id)
		} else {
			alert = c.shell.Claims.RejectVehicle(ctx, id)
		}
	case c.shell.Flights != nil:
		if cmd == "approve" {
			alert = c.shell.Flights.Approve(ctx, id)
		} else {
			alert = c.shell.Flights.Reject(ctx, id)
		}
	default:
		fmt.Fprintln(c.out, "approve/reject only apply on the claims and flights tabs")
		return
	}
	if alert != nil {
		fmt.Fprintf(c.out, "!! %s\n", alert.Message)
	}
}

func (c *console) edit(id string) {
	d := c.shell.Directory
	for _, e := range d.Employees {
		if e.ID == id || e.EmployeeID == id {
			d.OpenEdit(e)
			return
		}
	}
	fmt.Fprintf(c.out, "no employee %q in the current list\n", id)
}

func (c *console) setField(name, value string) {
	f := &c.shell.Directory.Form
	switch name {
	case "employee-id":
		f.EmployeeID = value
	case "first-name":
		f.FirstName = value
	case "last-name":
		f.LastName = value
	case "email":
		f.Email = value
	case "phone":
		f.Phone = value
	case "department":
		f.Department = value
	case "position":
		f.Position = value
	case "hire-date":
		f.HireDate = value
	case "tier":
		f.MedicalInsuranceTier = value
	case "passport-number":
		f.PassportNumber = value
	case "passport-expiry":
		f.PassportExpiry = value
	default:
		fmt.Fprintf(c.out, "unknown field %q\n", name)
	}
}

func (c *console) render() {
	switch {
	case c.shell.Dashboard != nil:
		c.renderDashboard()
	case c.shell.Directory != nil:
		c.renderDirectory()
	case c.shell.Claims != nil:
		c.renderClaims()
	case c.shell.Flights != nil:
		c.renderFlights()
	}
}

func (c *console) renderDashboard() {
	d := c.shell.Dashboard
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Total Employees\t", d.Stats.TotalEmployees)
	fmt.Fprintln(w, "Total Vehicles\t", d.Stats.TotalVehicles)
	fmt.Fprintln(w, "Pending Claims\t", d.PendingClaims())
	fmt.Fprintln(w, "Pending Flights\t", d.Stats.PendingFlights)
	w.Flush()

	if len(d.Stats.EmployeesByDepartment) > 0 {
		fmt.Fprintln(c.out, "\nEmployees by department:")
		for dept, n := range d.Stats.EmployeesByDepartment {
			fmt.Fprintf(c.out, "  %-45s %d\n", dept, n)
		}
	}
	if len(d.Stats.ClaimsByStatus) > 0 {
		fmt.Fprintln(c.out, "\nClaims by status:")
		for st, n := range d.Stats.ClaimsByStatus {
			fmt.Fprintf(c.out, "  %-45s %d\n", st, n)
		}
	}
}

func (c *console) renderDirectory() {
	d := c.shell.Directory
	if d.Filter != "" {
		fmt.Fprintf(c.out, "Filter: %s\n", d.Filter)
	}
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE\tNAME\tEMAIL\tDEPARTMENT\tPOSITION\tTIER\tHIRED")
	for _, e := range d.Employees {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.EmployeeID, e.FullName(), e.Email, e.Department, e.Position,
			e.MedicalInsuranceTier, e.HireDate)
	}
	w.Flush()

	if d.FormOpen {
		c.renderForm()
	}
}

func (c *console) renderForm() {
	d := c.shell.Directory
	title := "New employee"
	if d.Editing != nil {
		title = "Editing " + d.Editing.ID
	}
	fmt.Fprintf(c.out, "\n%s (set <field> <value>, then submit or cancel)\n", title)

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "employee-id\t"+d.Form.EmployeeID)
	fmt.Fprintln(w, "first-name\t"+d.Form.FirstName)
	fmt.Fprintln(w, "last-name\t"+d.Form.LastName)
	fmt.Fprintln(w, "email\t"+d.Form.Email)
	fmt.Fprintln(w, "phone\t"+d.Form.Phone)
	fmt.Fprintln(w, "department\t"+d.Form.Department)
	fmt.Fprintln(w, "position\t"+d.Form.Position)
	fmt.Fprintln(w, "hire-date\t"+d.Form.HireDate)
	fmt.Fprintln(w, "tier\t"+d.Form.MedicalInsuranceTier)
	fmt.Fprintln(w, "passport-number\t"+d.Form.PassportNumber)
	fmt.Fprintln(w, "passport-expiry\t"+d.Form.PassportExpiry)
	w.Flush()
}

func (c *console) renderClaims() {
	v := c.shell.Claims
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	if v.ActiveTab == view.TabMedical {
		fmt.Fprintln(w, "ID\tCLAIM\tEMPLOYEE\tAMOUNT\tSTATUS\tACTIONS")
		for _, claim := range v.Medical {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
				claim.ID, claim.ClaimNumber, v.EmployeeName(claim.EmployeeID),
				claim.Amount, claim.Status, actionsLabel(len(v.Actions(claim.Status))))
		}
	} else {
		fmt.Fprintln(w, "ID\tCLAIM\tVEHICLE\tAMOUNT\tSTATUS\tACTIONS")
		for _, claim := range v.Vehicle {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
				claim.ID, claim.ClaimNumber, v.VehicleInfo(claim.VehicleID),
				claim.Amount, claim.Status, actionsLabel(len(v.Actions(claim.Status))))
		}
	}
	w.Flush()
}

func (c *console) renderFlights() {
	v := c.shell.Flights
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE\tROUTE\tDEPART\tRETURN\tCLASS\tSTATUS\tACTIONS")
	for _, r := range v.Reservations {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, v.EmployeeName(r.EmployeeID), view.Route(r),
			r.DepartureDate, r.ReturnDate, r.FlightClass, r.Status,
			actionsLabel(len(v.Actions(r.Status))))
	}
	w.Flush()
}

func actionsLabel(n int) string {
	if n == 0 {
		return "-"
	}
	return "approve/reject"
}
