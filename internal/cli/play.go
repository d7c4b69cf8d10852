package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/bitcube"
	"github.com/SeamusWaldron/bitcube/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn a cube interactively",
	Long: `Start an interactive TUI for turning a simulated cube.

Keyboard shortcuts:
  u l f r b d  - Turn a face clockwise
  U L F R B D  - Turn a face counter-clockwise
  z            - Undo the last turn
  s            - Scramble
  x            - Reset to solved
  q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var playSeed uint64

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Uint64VarP(&playSeed, "seed", "s", 0, "Random seed for scrambles")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// faceKeys maps lowercase keys to faces.
var faceKeys = map[string]bitcube.Face{
	"u": bitcube.FaceU,
	"l": bitcube.FaceL,
	"f": bitcube.FaceF,
	"r": bitcube.FaceR,
	"b": bitcube.FaceB,
	"d": bitcube.FaceD,
}

// keyRotation maps a key to a turn: lowercase is clockwise, uppercase
// counter-clockwise.
func keyRotation(key string) (bitcube.Rotation, bool) {
	if face, ok := faceKeys[key]; ok {
		return bitcube.NewRotation(face, bitcube.CW), true
	}
	if face, ok := faceKeys[strings.ToLower(key)]; ok && key != strings.ToLower(key) {
		return bitcube.NewRotation(face, bitcube.CCW), true
	}
	return bitcube.Rotation{}, false
}

type playModel struct {
	tracker        *bitcube.Tracker
	renderer       *render.Renderer
	rng            *rand.Rand
	scrambleLength int

	scramble []bitcube.Rotation // turns applied by the last scramble
	solved   bool               // a solve was already counted since the last scramble or reset
	status   string
	solves   int
	quitting bool
}

func newPlayModel(renderer *render.Renderer, rng *rand.Rand, scrambleLength int) *playModel {
	m := &playModel{
		tracker:        bitcube.NewTracker(),
		renderer:       renderer,
		rng:            rng,
		scrambleLength: scrambleLength,
	}
	m.tracker.SetSolvedCallback(m.onSolved)
	return m
}

// onSolved counts at most one solve per scramble or reset, so undoing and
// replaying the last turn does not count again.
func (m *playModel) onSolved(total int) {
	moves := total - len(m.scramble)
	if moves <= 0 || m.solved {
		return
	}
	m.solved = true
	m.solves++
	m.status = fmt.Sprintf("Solved in %d turns!", moves)
}

// userMoves returns the turns made since the last scramble.
func (m *playModel) userMoves() []bitcube.Rotation {
	return m.tracker.History()[len(m.scramble):]
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "z":
		if m.tracker.Len() <= len(m.scramble) {
			m.status = "Nothing to undo"
			break
		}
		r, _ := m.tracker.Undo()
		m.status = fmt.Sprintf("Undid %s", r.Notation())

	case "s":
		m.tracker.Reset()
		m.solved = false
		seq := bitcube.Scramble(bitcube.WithRand(m.rng), bitcube.WithLength(m.scrambleLength))
		m.scramble = seq
		m.tracker.ApplyAll(seq)
		m.status = "Scrambled"
		logger.Debug("scrambled", "notation", bitcube.FormatRotations(seq))

	case "x":
		m.scramble = nil
		m.solved = false
		m.tracker.Reset()
		m.status = "Reset"

	default:
		if r, ok := keyRotation(key.String()); ok {
			m.status = ""
			m.tracker.Apply(r)
		}
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("bitcube"))
	b.WriteString("\n\n")

	b.WriteString(m.renderer.Net(m.tracker.Cube()))
	b.WriteString("\n")

	if len(m.scramble) > 0 {
		b.WriteString(statusStyle.Render("Scramble: " + bitcube.FormatRotations(m.scramble)))
		b.WriteString("\n")
	}

	moves := m.userMoves()
	b.WriteString(fmt.Sprintf("Turns: %d  Solves: %d\n", len(moves), m.solves))

	// Recent moves
	if len(moves) > 0 {
		b.WriteString("Moves: ")
		start := 0
		if len(moves) > 20 {
			start = len(moves) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(bitcube.FormatRotations(moves[start:])))
		b.WriteString("\n")
	}

	if m.tracker.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ulfrbd=turn  ULFRBD=reverse  z=undo  s=scramble  x=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	var rng *rand.Rand
	if cmd.Flags().Changed("seed") {
		rng = rand.New(rand.NewPCG(playSeed, playSeed))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	model := newPlayModel(newRenderer(cmd.OutOrStdout()), rng, cfg.ScrambleLength)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}
