package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/icmt/errors"
	"github.com/icmt/icmt/internal/icmt/form"
	"github.com/icmt/icmt/internal/icmt/page"
	"github.com/icmt/icmt/internal/log"
)

type enrollFlag struct {
	name  string
	field string
	usage string
}

var enrollTextFlags = []enrollFlag{
	{"first-name", form.FieldFirstName, "First name"},
	{"last-name", form.FieldLastName, "Last name"},
	{"email", form.FieldEmail, "Email address"},
	{"university", form.FieldUniversity, "University"},
	{"tshirt-size", form.FieldTShirtSize, "T-shirt size (XS, S, M, L, XL, XXL)"},
	{"division", form.FieldDivision, "Division (A or B)"},
	{"graduation-year", form.FieldGraduationYear, "Expected graduation year"},
	{"resume-url", form.FieldResumeURL, "Resume URL"},
}

var enrollBoolFlags = []enrollFlag{
	{"ack-id", form.FieldIDRequirement, "Acknowledge the photo ID requirement"},
	{"ack-filming", form.FieldFilming, "Acknowledge the filming notice"},
	{"ack-team-merge", form.FieldTeamMerge, "Acknowledge the team merge policy"},
	{"financial-aid", form.FieldFinancialAid, "Interested in financial aid"},
}

var (
	enrollEvent      string
	enrollNoPrompt   bool
	enrollTextValues = map[string]*string{}
	enrollBoolValues = map[string]*bool{}
)

var fieldLabels = map[string]string{
	form.FieldFirstName:      "First Name:",
	form.FieldLastName:       "Last Name:",
	form.FieldEmail:          "Email Address:",
	form.FieldUniversity:     "University:",
	form.FieldTShirtSize:     "T-Shirt Size:",
	form.FieldDivision:       "Division:",
	form.FieldGraduationYear: "Expected Graduation Year:",
	form.FieldResumeURL:      "Resume URL (optional):",
	form.FieldIDRequirement:  form.TextIDRequirement,
	form.FieldFilming:        form.TextFilming,
	form.FieldTeamMerge:      form.TextTeamMerge,
	form.FieldFinancialAid:   form.TextFinancialAid,
}

var enrollCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Register for an event",
	Long: `Fill in and submit the event registration form.

The first open event is selected unless --event names another one (by id or
name). Fields given as flags are not asked again; with --no-prompt nothing is
asked and the form is submitted as given.`,
	Example: `  # Interactive
  icmt enroll

  # Fully scripted
  icmt enroll --no-prompt --event "ICMT Spring" --first-name Ada --last-name Lovelace \
    --email ada@example.com --university Columbia --tshirt-size M --division A \
    --graduation-year 2027 --ack-id --ack-filming --ack-team-merge`,
	Run: func(cmd *cobra.Command, _ []string) {
		_, client := mustClient()

		ctx, cancel := signalContext()
		defer cancel()

		nav := &navigation{}
		reg, err := runEnroll(ctx, client, nav.navigate, enrollOptions{
			EventID:  enrollEvent,
			Values:   collectEnrollFlags(cmd.Flags()),
			Prompter: newPrompter(enrollNoPrompt),
			Now:      time.Now,
		})
		saveSession(client)
		if err != nil {
			log.Debug("Enroll error: %v", err)
			if msg := reg.View().Error; msg != "" {
				log.Fatal(msg)
			}
			log.Fatal(err)
		}

		if p := reg.View().Participant; p != nil {
			log.Success("Registered %s %s (participant %s)", p.FirstName, p.LastName, p.ID)
		} else {
			log.Success("Registration submitted")
		}
		nav.follow(cmd.OutOrStdout())
	},
}

type enrollOptions struct {
	EventID  string
	Values   map[string]string
	Prompter prompter
	Now      func() time.Time
}

type changedFlags interface {
	Changed(name string) bool
}

// collectEnrollFlags returns the form values given explicitly on the command line.
func collectEnrollFlags(flags changedFlags) map[string]string {
	values := map[string]string{}
	for _, f := range enrollTextFlags {
		if flags.Changed(f.name) {
			values[f.field] = *enrollTextValues[f.field]
		}
	}
	for _, f := range enrollBoolFlags {
		if flags.Changed(f.name) {
			values[f.field] = strconv.FormatBool(*enrollBoolValues[f.field])
		}
	}
	return values
}

// runEnroll drives a registration page from flags and prompts. It always
// returns the page so the caller can report its final state.
func runEnroll(ctx context.Context, svc page.EventService, nav page.Navigator, opts enrollOptions) (*page.Registration, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	p := opts.Prompter
	if p == nil {
		p = noPrompter{}
	}

	reg := page.NewRegistration(svc, nav, page.WithClock(opts.Now))
	reg.Load(ctx)

	events := reg.Events()
	if msg := reg.View().Error; msg != "" {
		log.Error("%s", msg)
	}
	if len(events) == 0 {
		return reg, errors.Wrap(errors.ErrNoEventSelected, "no events are open for registration")
	}

	if opts.EventID != "" {
		id, ok := matchEvent(events, opts.EventID)
		if !ok {
			return reg, errors.Wrapf(errors.ErrInvalidEventID, "no open event matches %q", opts.EventID)
		}
		reg.SelectEvent(id)
	} else if err := promptEvent(reg, p); err != nil {
		return reg, err
	}

	var setErr error
	reg.Update(func(f *form.Form) {
		for field, value := range opts.Values {
			if err := f.Set(field, value); err != nil && setErr == nil {
				setErr = err
			}
		}
	})
	if setErr != nil {
		return reg, setErr
	}

	if err := promptForm(reg, p, opts.Values); err != nil {
		return reg, err
	}

	for {
		err := reg.Submit(ctx)
		if err == nil {
			return reg, nil
		}

		log.Error("%s", reg.View().Error)
		retry, perr := p.Confirm("Edit your answers and try again?", true)
		if perr != nil || !retry {
			return reg, err
		}

		if errors.Is(err, errors.ErrNoEventSelected) {
			if err := promptEvent(reg, p); err != nil {
				return reg, err
			}
		}
		if err := promptForm(reg, p, nil); err != nil {
			return reg, err
		}
	}
}

// matchEvent finds an event by id or, failing that, by case-insensitive name.
func matchEvent(events []api.Event, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	for _, ev := range events {
		if strings.EqualFold(ev.ID.String(), ref) {
			return ev.ID.String(), true
		}
	}
	for _, ev := range events {
		if strings.EqualFold(ev.Name, ref) {
			return ev.ID.String(), true
		}
	}
	return "", false
}

func eventChoice(ev api.Event) string {
	return fmt.Sprintf("%s [%s]", page.EventLabel(ev), ev.ID)
}

// promptEvent offers the loaded events; without prompting the page keeps its
// automatic selection.
func promptEvent(reg *page.Registration, p prompter) error {
	events := reg.Events()
	selected := reg.View().Selected

	options := make([]string, 0, len(events))
	ids := make(map[string]string, len(events))
	def := ""
	for _, ev := range events {
		choice := eventChoice(ev)
		options = append(options, choice)
		ids[choice] = ev.ID.String()
		if ev.ID.String() == selected {
			def = choice
		}
	}

	answer, err := p.Select("Event:", options, def)
	if errors.Is(err, errors.ErrPromptDisabled) {
		return nil
	}
	if err != nil {
		return err
	}
	reg.SelectEvent(ids[answer])
	return nil
}

// promptForm asks for every field not present in given. Answers are applied
// through the form's setters as they arrive.
func promptForm(reg *page.Registration, p prompter, given map[string]string) error {
	years := reg.View().GraduationYears

	for _, field := range form.Fields {
		if _, ok := given[field]; ok {
			continue
		}

		current := currentValue(reg.View().Values, field)
		answer, err := askField(p, field, current, years)
		if errors.Is(err, errors.ErrPromptDisabled) {
			return nil
		}
		if err != nil {
			return err
		}

		reg.Update(func(f *form.Form) {
			// field comes from form.Fields
			_ = f.Set(field, answer)
		})
	}
	return nil
}

func askField(p prompter, field, current string, years []int) (string, error) {
	label := fieldLabels[field]

	switch field {
	case form.FieldTShirtSize:
		return selectOption(p, label, form.TShirtSizes, current)
	case form.FieldDivision:
		return selectOption(p, label, form.Divisions, current)
	case form.FieldGraduationYear:
		options := make([]string, len(years))
		for i, y := range years {
			options[i] = strconv.Itoa(y)
		}
		if current == "" && len(options) > 0 {
			current = options[0]
		}
		return p.Select(label, options, current)
	case form.FieldIDRequirement, form.FieldFilming, form.FieldTeamMerge, form.FieldFinancialAid:
		ok, err := p.Confirm(label, current == "true")
		return strconv.FormatBool(ok), err
	case form.FieldResumeURL:
		return p.Input(label, current, false)
	}
	return p.Input(label, current, true)
}

func selectOption(p prompter, label string, options []form.Option, current string) (string, error) {
	labels := make([]string, len(options))
	def := ""
	for i, o := range options {
		labels[i] = o.Label
		if o.Value == current {
			def = o.Label
		}
	}

	answer, err := p.Select(label, labels, def)
	if err != nil {
		return "", err
	}
	for _, o := range options {
		if o.Label == answer {
			return o.Value, nil
		}
	}
	return answer, nil
}

func currentValue(v form.Values, field string) string {
	switch field {
	case form.FieldFirstName:
		return v.FirstName
	case form.FieldLastName:
		return v.LastName
	case form.FieldEmail:
		return v.Email
	case form.FieldUniversity:
		return v.University
	case form.FieldTShirtSize:
		return v.TShirtSize
	case form.FieldDivision:
		return v.Division
	case form.FieldGraduationYear:
		return v.ExpectedGraduationYear
	case form.FieldResumeURL:
		return v.ResumeURL
	case form.FieldIDRequirement:
		return strconv.FormatBool(v.AcknowledgedIDRequirement)
	case form.FieldFilming:
		return strconv.FormatBool(v.AcknowledgedFilming)
	case form.FieldTeamMerge:
		return strconv.FormatBool(v.AcknowledgedTeamMerge)
	case form.FieldFinancialAid:
		return strconv.FormatBool(v.InterestedInFinancialAid)
	}
	return ""
}

func init() {
	rootCmd.AddCommand(enrollCmd)

	enrollCmd.Flags().StringVar(&enrollEvent, "event", "", "Event id or name (defaults to the first open event)")
	enrollCmd.Flags().BoolVar(&enrollNoPrompt, "no-prompt", false, "Never prompt; submit the form as given")
	for _, f := range enrollTextFlags {
		v := new(string)
		enrollTextValues[f.field] = v
		enrollCmd.Flags().StringVar(v, f.name, "", f.usage)
	}
	for _, f := range enrollBoolFlags {
		v := new(bool)
		enrollBoolValues[f.field] = v
		enrollCmd.Flags().BoolVar(v, f.name, false, f.usage)
	}
}
