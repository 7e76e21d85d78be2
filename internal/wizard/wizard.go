// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package wizard drives a research-design session from a line-oriented
// terminal. Every prompt accepts :back to return to the previous stage and
// :restart to discard the draft. An empty answer keeps the current value.
package wizard

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/pdiddy/research-design/internal/assemble"
	"github.com/pdiddy/research-design/internal/recommend"
	"github.com/pdiddy/research-design/internal/session"
	"github.com/pdiddy/research-design/pkg/types"
)

const (
	cmdBack    = ":back"
	cmdRestart = ":restart"
)

// ErrInputClosed is returned when the input ends before the Complete stage.
var ErrInputClosed = errors.New("input closed before the session completed")

var (
	errBack    = errors.New("back")
	errRestart = errors.New("restart")
)

// Catalog is the method lookup the wizard needs.
type Catalog interface {
	All() []types.ResearchMethod
	Find(id string) (types.ResearchMethod, bool)
	Has(id string) bool
}

// Result is what a wizard run produced. Draft is set even when Run fails so
// partial work can be saved.
type Result struct {
	Draft    *types.ResearchDraft
	Document string
}

// Wizard prompts for each stage in order until the draft is complete.
type Wizard struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog Catalog
	engine  *recommend.Engine
	asm     *assemble.Assembler
	sess    *session.Session
	logger  *slog.Logger
}

// New returns a wizard reading answers from in and writing prompts to out.
// A non-nil start draft is resumed instead of a blank one.
func New(in io.Reader, out io.Writer, c Catalog, engine *recommend.Engine, asm *assemble.Assembler, start *types.ResearchDraft) *Wizard {
	sess := session.Resume(c, start)
	return &Wizard{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: c,
		engine:  engine,
		asm:     asm,
		sess:    sess,
		logger:  slog.Default().With("session", sess.ID.String()),
	}
}

// Run walks the stages until Complete, then writes the rendered document.
func (w *Wizard) Run(ctx context.Context) (Result, error) {
	w.logger.Info("wizard started")
	for w.sess.Stage() != session.StageComplete {
		if err := ctx.Err(); err != nil {
			return w.result(""), err
		}
		stage := w.sess.Stage()
		w.header(stage)

		err := w.runStage(stage)
		switch {
		case errors.Is(err, errBack):
			if err := w.sess.Back(); err != nil {
				fmt.Fprintln(w.out, "Already at the first stage.")
			}
			continue
		case errors.Is(err, errRestart):
			w.sess.Restart()
			fmt.Fprintln(w.out, "Starting over with a blank draft.")
			w.logger.Info("session restarted")
			continue
		case err != nil:
			return w.result(""), err
		}

		if err := w.sess.Next(); err != nil {
			missing := session.Missing(stage, w.sess.Draft())
			fmt.Fprintf(w.out, "This stage is not complete yet. Still needed: %s\n", strings.Join(missing, ", "))
			w.logger.Debug("stage incomplete", "stage", stage.String(), "missing", missing)
			continue
		}
		w.logger.Debug("stage advanced", "to", w.sess.Stage().String())
	}

	doc := w.asm.Render(w.sess.Draft())
	fmt.Fprintf(w.out, "\n%s", doc)
	w.logger.Info("wizard completed")
	return w.result(doc), nil
}

func (w *Wizard) result(doc string) Result {
	return Result{Draft: w.sess.Draft(), Document: doc}
}

func (w *Wizard) header(s session.Stage) {
	fmt.Fprintf(w.out, "\n== Step %d/%d: %s ==\n", int(s)+1, len(session.Stages)-1, s.Title())
	for _, q := range session.Visible(session.Questions(s, w.sess.Draft())) {
		fmt.Fprintf(w.out, "  ? %s\n    %s\n", q.Question, q.FollowUp)
	}
}

func (w *Wizard) runStage(s session.Stage) error {
	switch s {
	case session.StageContext:
		return w.contextStage()
	case session.StageProblem:
		return w.problemStage()
	case session.StageDesign:
		return w.designStage()
	case session.StageExecution:
		return w.executionStage()
	}
	return nil
}

// Each stage starts from the draft's current values and applies whatever was
// entered when it returns, so leaving a stage midway with :back keeps the
// answers already given.

func (w *Wizard) contextStage() (err error) {
	d := w.sess.Draft()
	u := session.IdentityUpdate{
		ProjectName:  d.ProjectName,
		ProjectType:  d.ProjectType,
		CurrentPhase: d.CurrentPhase,
		Stakeholders: d.Stakeholders,
	}
	defer func() { w.sess.Apply(u) }()

	if u.ProjectName, err = w.askText("Project name", u.ProjectName); err != nil {
		return err
	}
	if u.ProjectType, err = askChoice(w, "Project type", u.ProjectType, types.ProjectTypes); err != nil {
		return err
	}
	if u.CurrentPhase, err = askChoice(w, "Current phase", u.CurrentPhase, types.Phases); err != nil {
		return err
	}
	u.Stakeholders, err = w.askText("Key stakeholders", u.Stakeholders)
	return err
}

func (w *Wizard) problemStage() (err error) {
	d := w.sess.Draft()
	p := session.ProblemUpdate{
		BusinessProblem: d.BusinessProblem,
		UserProblem:     d.UserProblem,
		ResearchPurpose: d.ResearchPurpose,
		SuccessMetrics:  d.SuccessMetrics,
	}
	q := session.QuestionsUpdate{Questions: d.Questions, Hypotheses: d.Hypotheses}
	a := session.AudienceUpdate{
		TargetUser:          d.TargetUser,
		UserSegments:        d.UserSegments,
		RecruitmentCriteria: d.RecruitmentCriteria,
	}
	defer func() {
		w.sess.Apply(p)
		w.sess.Apply(q)
		w.sess.Apply(a)
	}()

	if p.BusinessProblem, err = w.askText("Business problem", p.BusinessProblem); err != nil {
		return err
	}
	if p.UserProblem, err = w.askText("User problem", p.UserProblem); err != nil {
		return err
	}
	if p.ResearchPurpose, err = w.askText("Research purpose", p.ResearchPurpose); err != nil {
		return err
	}
	if p.SuccessMetrics, err = w.askText("Success metrics", p.SuccessMetrics); err != nil {
		return err
	}
	if q.Questions, err = w.askList("Research questions", q.Questions); err != nil {
		return err
	}
	if q.Hypotheses, err = w.askList("Hypotheses", q.Hypotheses); err != nil {
		return err
	}
	if a.TargetUser, err = w.askText("Primary target user", a.TargetUser); err != nil {
		return err
	}
	if a.UserSegments, err = w.askText("User segments", a.UserSegments); err != nil {
		return err
	}
	a.RecruitmentCriteria, err = w.askText("Recruitment criteria", a.RecruitmentCriteria)
	return err
}

func (w *Wizard) designStage() error {
	if err := w.constraints(); err != nil {
		return err
	}
	w.showShortlist()
	return w.methods()
}

func (w *Wizard) constraints() (err error) {
	d := w.sess.Draft()
	c := session.ConstraintsUpdate{
		Timeline:    d.Timeline,
		Budget:      d.Budget,
		Resources:   d.Resources,
		Limitations: d.Limitations,
	}
	defer func() { w.sess.Apply(c) }()

	if c.Timeline, err = askChoice(w, "Timeline", c.Timeline, types.Timelines); err != nil {
		return err
	}
	if c.Budget, err = askChoice(w, "Budget", c.Budget, types.Budgets); err != nil {
		return err
	}
	if c.Resources, err = askChoice(w, "Resources", c.Resources, types.ResourceOptions); err != nil {
		return err
	}
	c.Limitations, err = w.askText("Other limitations", c.Limitations)
	return err
}

func (w *Wizard) methods() (err error) {
	d := w.sess.Draft()
	m := session.MethodsUpdate{Selected: d.SelectedMethods, Rationale: d.MethodRationale}
	defer func() { w.sess.Apply(m) }()

	if m.Selected, err = w.askMethods(m.Selected); err != nil {
		return err
	}
	m.Rationale, err = w.askText("Why these methods", m.Rationale)
	return err
}

func (w *Wizard) executionStage() (err error) {
	e := w.sess.Draft().Execution
	defer func() { w.sess.Apply(session.ExecutionUpdate{Details: e}) }()

	if e.Participants, err = w.askText("Participants", e.Participants); err != nil {
		return err
	}
	if e.RecruitmentMethod, err = askChoice(w, "Recruitment method", e.RecruitmentMethod, types.RecruitmentMethods); err != nil {
		return err
	}
	if e.Duration, err = w.askText("Session duration", e.Duration); err != nil {
		return err
	}
	if e.Schedule, err = w.askText("Overall schedule", e.Schedule); err != nil {
		return err
	}
	if e.Tools, err = w.askText("Tools", e.Tools); err != nil {
		return err
	}
	if e.Location, err = askChoice(w, "Location", e.Location, types.Locations); err != nil {
		return err
	}
	if e.DataCollection, err = w.askText("Data collection", e.DataCollection); err != nil {
		return err
	}
	if e.AnalysisMethod, err = w.askText("Analysis method", e.AnalysisMethod); err != nil {
		return err
	}
	if e.Deliverables, err = w.askText("Deliverables", e.Deliverables); err != nil {
		return err
	}
	e.Risks, err = w.askText("Risks and mitigation", e.Risks)
	return err
}

func (w *Wizard) showShortlist() {
	scores := w.engine.Score(w.sess.Draft())
	fmt.Fprintln(w.out, "Recommended methods:")
	for i, s := range scores[:min(recommend.ShortlistSize, len(scores))] {
		m, _ := w.catalog.Find(s.ID)
		fmt.Fprintf(w.out, "  %d. %s (%s, score %d)\n", i+1, m.Name, s.ID, s.Score)
	}
}

// readLine returns the next trimmed input line, or errBack / errRestart for
// the navigation commands.
func (w *Wizard) readLine() (string, error) {
	if !w.in.Scan() {
		if err := w.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	line := strings.TrimSpace(w.in.Text())
	switch line {
	case cmdBack:
		return "", errBack
	case cmdRestart:
		return "", errRestart
	}
	return line, nil
}

func (w *Wizard) askText(label, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(w.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(w.out, "%s: ", label)
	}
	line, err := w.readLine()
	if err != nil || line == "" {
		return current, err
	}
	return line, nil
}

// askChoice accepts an option by number or by value and re-prompts on
// anything else.
func askChoice[T ~string](w *Wizard, label string, current T, options []T) (T, error) {
	for {
		fmt.Fprintf(w.out, "%s:\n", label)
		for i, o := range options {
			fmt.Fprintf(w.out, "  %d. %s\n", i+1, o)
		}
		if current != "" {
			fmt.Fprintf(w.out, "choice [%s]: ", current)
		} else {
			fmt.Fprint(w.out, "choice: ")
		}
		line, err := w.readLine()
		if err != nil || line == "" {
			return current, err
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		for _, o := range options {
			if strings.EqualFold(line, string(o)) {
				return o, nil
			}
		}
		fmt.Fprintf(w.out, "  %q is not one of the options\n", line)
	}
}

// askList reads entries one per line until a blank line. A blank first line
// keeps the current entries.
func (w *Wizard) askList(label string, current []string) ([]string, error) {
	fmt.Fprintf(w.out, "%s (one per line, blank line to finish)\n", label)
	if existing := assemble.Numbered(current); len(existing) > 0 {
		fmt.Fprintln(w.out, "  current entries, kept if the first line is blank:")
		for _, e := range existing {
			fmt.Fprintf(w.out, "  %s\n", e)
		}
	}
	var items []string
	for {
		fmt.Fprint(w.out, "> ")
		line, err := w.readLine()
		if err != nil {
			return current, err
		}
		if line == "" {
			break
		}
		items = append(items, line)
	}
	if len(items) == 0 {
		return current, nil
	}
	return items, nil
}

// askMethods accepts catalog numbers or method IDs separated by commas or
// spaces. Unknown entries are reported and skipped.
func (w *Wizard) askMethods(current []string) ([]string, error) {
	methods := w.catalog.All()
	fmt.Fprintln(w.out, "Available methods:")
	for i, m := range methods {
		mark := " "
		if containsID(current, m.ID) {
			mark = "x"
		}
		fmt.Fprintf(w.out, "  %d. [%s] %s (%s): %s\n", i+1, mark, m.Name, m.ID, m.Description)
	}
	if len(current) > 0 {
		fmt.Fprintf(w.out, "Methods [%s]: ", strings.Join(current, ", "))
	} else {
		fmt.Fprint(w.out, "Methods: ")
	}
	line, err := w.readLine()
	if err != nil || line == "" {
		return current, err
	}

	var ids []string
	tokens := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	for _, tok := range tokens {
		if n, err := strconv.Atoi(tok); err == nil && n >= 1 && n <= len(methods) {
			ids = append(ids, methods[n-1].ID)
			continue
		}
		if w.catalog.Has(tok) {
			ids = append(ids, tok)
			continue
		}
		fmt.Fprintf(w.out, "  ignoring unknown method %q\n", tok)
	}
	return ids, nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
