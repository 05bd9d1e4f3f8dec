package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arnavshah/shift-board-api/pkg/client"
	"github.com/arnavshah/shift-board-api/pkg/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	shortStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func (o *globalOpts) client() *client.Client {
	c := client.New(o.url)
	c.Token = o.token
	return c
}

func newHealthCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the server is online",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, resp := opts.client().Health(cmd.Context())
			out := cmd.OutOrStdout()
			if status == client.Online {
				fmt.Fprintf(out, "%s (%s)\n", okStyle.Render(string(status)), resp.Name)
				return nil
			}
			fmt.Fprintln(out, shortStyle.Render(string(status)))
			return nil
		},
	}
}

func newSlotsCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "List staffing slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := opts.client().Slots(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSECTOR\tSHIFT\tROLE\tMIN\tMAX")
			for _, s := range slots {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\n", s.ID, s.Sector, s.Shift, s.Role, s.Min, s.Max)
			}
			return tw.Flush()
		},
	}
}

func newRequestsCmd(opts *globalOpts) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "List shift requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := models.RequestStatus(status)
			if st != "" && !st.Valid() {
				return fmt.Errorf("unknown status %q", status)
			}
			reqs, err := opts.client().Requests(cmd.Context(), st)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tEMPLOYEE\tSECTOR\tSHIFT\tROLE\tHOURS\tSTATUS")
			for _, r := range reqs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%g\t%s\n", r.ID, r.Employee, r.Sector, r.Shift, r.Role, r.Hours, r.Status)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only show requests in this status (pending, approved, rejected)")
	return cmd
}

func newReviewCmd(opts *globalOpts, action string) *cobra.Command {
	status := models.StatusApproved
	if action == "reject" {
		status = models.StatusRejected
	}
	return &cobra.Command{
		Use:   action + " <request-id>",
		Short: fmt.Sprintf("Mark a request %s", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.client().SetStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now %s\n", req.ID, req.Employee, req.Status)
			return nil
		},
	}
}

func newCoverageCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "coverage",
		Short: "Show approved headcount against each slot minimum",
		RunE: func(cmd *cobra.Command, args []string) error {
			cov, err := opts.client().Coverage(cmd.Context())
			if err != nil {
				return err
			}
			printCoverage(cmd.OutOrStdout(), cov)
			return nil
		},
	}
}

func printCoverage(w io.Writer, cov models.CoverageResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tSECTOR\tSHIFT\tROLE\tAPPROVED\tMIN\tMAX\t")
	for _, r := range cov.Rows {
		mark := okStyle.Render("ok")
		if !r.Satisfied {
			mark = shortStyle.Render(fmt.Sprintf("short %d", r.Deficit))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n", r.SlotID, r.Sector, r.Shift, r.Role, r.Approved, r.Min, r.Max, mark)
	}
	tw.Flush()
	fmt.Fprintf(w, "can publish: %t\n", cov.CanPublish)
}

func newPublishCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Publish the schedule if every slot is covered",
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := opts.client().Publish(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %s by %s\n", sched.PublicationID, sched.PublishedBy)
			return nil
		},
	}
}
