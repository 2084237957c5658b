package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/warp-search/internal/config"
	"github.com/iburimskiy/warp-search/internal/history"
	"github.com/iburimskiy/warp-search/internal/search"
)

// OverlayOptions wires the search box to the rest of the app.
type OverlayOptions struct {
	Search  *search.Async
	History *history.Store
	Cue     Cue

	// OnSubmit runs synchronously whenever a query is sent.
	OnSubmit func()
	// Open is called with the path of a clicked result. Defaults to search.Open.
	Open func(path string) error
	// Report shows an error to the user. Defaults to a native dialog.
	Report func(err error)
}

// Overlay is the search box and result list drawn over the backdrop.
type Overlay struct {
	opts OverlayOptions

	input         []rune
	chars         []rune
	historyCursor int

	results     []search.Result
	resultAlpha float32
	fade        *gween.Tween
	message     string
	lastQuery   string

	width   int
	hovered int
}

func NewOverlay(opts OverlayOptions) *Overlay {
	if opts.Open == nil {
		opts.Open = search.Open
	}
	if opts.Report == nil {
		opts.Report = showError
	}
	if opts.History == nil {
		opts.History = history.NewStore(nil, 0)
	}
	return &Overlay{
		opts:          opts,
		historyCursor: -1,
		width:         config.WindowWidth,
		hovered:       -1,
		message:       "Type to search, Enter to submit, Esc to quit",
	}
}

// Update reads keyboard and mouse input for this frame and advances the fade.
func (o *Overlay) Update(dt float32) {
	o.chars = ebiten.AppendInputChars(o.chars[:0])
	o.TypeRunes(o.chars)

	if repeatingKeyPressed(ebiten.KeyBackspace) {
		o.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		o.Submit()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		o.RecallOlder()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		o.RecallNewer()
	}

	mouseX, mouseY := ebiten.CursorPosition()
	o.hovered = o.resultAt(mouseX, mouseY)
	if o.hovered >= 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		o.OpenResult(o.hovered)
	}

	o.Receive()
	o.Advance(dt)
}

func (o *Overlay) Resize(width, height int) {
	o.width = width
}

func (o *Overlay) TypeRunes(runes []rune) {
	for _, r := range runes {
		if !unicode.IsPrint(r) || len(o.input) >= config.MaxQueryLength {
			continue
		}
		o.input = append(o.input, r)
		o.historyCursor = -1
	}
}

func (o *Overlay) Backspace() {
	if len(o.input) > 0 {
		o.input = o.input[:len(o.input)-1]
		o.historyCursor = -1
	}
}

// Escape clears a non-empty box. It returns false when there was nothing to
// clear, which the caller treats as a quit request.
func (o *Overlay) Escape() bool {
	if len(o.input) == 0 {
		return false
	}
	o.input = o.input[:0]
	o.historyCursor = -1
	return true
}

// Submit sends the current query. Blank input is ignored.
func (o *Overlay) Submit() bool {
	query := strings.TrimSpace(string(o.input))
	if query == "" {
		return false
	}
	log.Printf("[Overlay] Searching for: %s", query)

	if o.opts.OnSubmit != nil {
		o.opts.OnSubmit()
	}
	if o.opts.Cue != nil {
		o.opts.Cue.Play()
	}
	o.opts.History.Add(query)
	o.historyCursor = -1
	o.lastQuery = query
	if o.opts.Search != nil {
		o.opts.Search.Submit(query)
	}
	return true
}

// RecallOlder steps back through history. It only acts on an empty box or
// one already showing a recalled entry.
func (o *Overlay) RecallOlder() {
	if o.historyCursor < 0 && len(o.input) > 0 {
		return
	}
	if q, ok := o.opts.History.At(o.historyCursor + 1); ok {
		o.historyCursor++
		o.input = []rune(q)
	}
}

func (o *Overlay) RecallNewer() {
	if o.historyCursor < 0 {
		return
	}
	o.historyCursor--
	if o.historyCursor < 0 {
		o.input = o.input[:0]
		return
	}
	q, _ := o.opts.History.At(o.historyCursor)
	o.input = []rune(q)
}

// Receive picks up a finished search, if any, and starts the fade-in.
func (o *Overlay) Receive() {
	if o.opts.Search == nil {
		return
	}
	resp, ok := o.opts.Search.Poll()
	if !ok {
		return
	}

	if resp.Err != nil {
		log.Printf("[Overlay] Search for %q failed: %v", resp.Query, resp.Err)
		o.results = nil
		o.message = "Error: " + resp.Err.Error()
		return
	}

	o.results = resp.Results
	switch len(resp.Results) {
	case 0:
		o.message = fmt.Sprintf("No results for %q", resp.Query)
	case 1:
		o.message = fmt.Sprintf("1 result in %s", formatElapsed(resp.Elapsed))
	default:
		o.message = fmt.Sprintf("%d results in %s", len(resp.Results), formatElapsed(resp.Elapsed))
	}
	o.resultAlpha = 0
	o.fade = gween.New(0, 1, config.ResultFadeIn, ease.OutCubic)
}

// Advance moves the result fade by dt seconds.
func (o *Overlay) Advance(dt float32) {
	if o.fade == nil {
		return
	}
	alpha, done := o.fade.Update(dt)
	o.resultAlpha = alpha
	if done {
		o.resultAlpha = 1
		o.fade = nil
	}
}

func (o *Overlay) OpenResult(i int) {
	if i < 0 || i >= len(o.results) {
		return
	}
	if err := o.opts.Open(o.results[i].Path); err != nil {
		log.Printf("[Overlay] %v", err)
		o.opts.Report(err)
	}
}

func (o *Overlay) Query() string {
	return string(o.input)
}

func (o *Overlay) Results() []search.Result {
	return o.results
}

func (o *Overlay) Alpha() float32 {
	return o.resultAlpha
}

// Status is the line shown under the search box.
func (o *Overlay) Status() string {
	if o.opts.Search != nil && o.opts.Search.Pending() {
		return fmt.Sprintf("Searching for %q...", o.lastQuery)
	}
	return o.message
}

func (o *Overlay) boxWidth() int {
	return o.width - 2*config.SearchBoxX
}

func (o *Overlay) resultsTop() int {
	return config.SearchBoxY + config.SearchBoxHeight + 28
}

// resultAt returns the index of the result row under (x, y), or -1.
func (o *Overlay) resultAt(x, y int) int {
	if x < config.SearchBoxX || x > config.SearchBoxX+o.boxWidth() {
		return -1
	}
	top := o.resultsTop()
	if y < top {
		return -1
	}
	i := (y - top) / config.ResultRowHeight
	if i >= len(o.results) {
		return -1
	}
	return i
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	x, y := float32(config.SearchBoxX), float32(config.SearchBoxY)
	w, h := float32(o.boxWidth()), float32(config.SearchBoxHeight)

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{R: 12, G: 14, B: 22, A: 210}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 70, G: 80, B: 110, A: 255}, false)

	maxChars := (o.boxWidth() - 24) / 6
	ebitenutil.DebugPrintAt(screen, "> "+truncateTail(o.Query(), maxChars)+"_", config.SearchBoxX+10, config.SearchBoxY+10)
	ebitenutil.DebugPrintAt(screen, o.Status(), config.SearchBoxX, config.SearchBoxY+config.SearchBoxHeight+8)

	o.drawResults(screen)
}

func (o *Overlay) drawResults(screen *ebiten.Image) {
	if len(o.results) == 0 || o.resultAlpha <= 0 {
		return
	}
	alpha := clamp01(float64(o.resultAlpha))
	maxChars := (o.boxWidth() - 24) / 6

	for i, r := range o.results {
		x := float32(config.SearchBoxX)
		y := float32(o.resultsTop() + i*config.ResultRowHeight)
		w := float32(o.boxWidth())
		h := float32(config.ResultRowHeight - 6)

		bg := color.RGBA{R: 18, G: 20, B: 30, A: uint8(190 * alpha)}
		if i == o.hovered {
			bg = color.RGBA{R: 36, G: 42, B: 64, A: uint8(220 * alpha)}
		}
		vector.DrawFilledRect(screen, x, y, w, h, bg, false)

		// score bar, red for weak matches through green for strong ones
		hue := clamp01(r.Score) * 120
		cr, cg, cb := hsvToRgb(hue, 0.8, 0.9)
		barColor := color.RGBA{R: uint8(float64(cr) * alpha), G: uint8(float64(cg) * alpha), B: uint8(float64(cb) * alpha), A: uint8(255 * alpha)}
		vector.DrawFilledRect(screen, x, y, 4, h*float32(clamp01(r.Score)), barColor, false)

		ebitenutil.DebugPrintAt(screen, truncateText(r.Name, maxChars), int(x)+12, int(y)+4)
		ebitenutil.DebugPrintAt(screen, truncateText(r.Path, maxChars), int(x)+12, int(y)+20)
	}
}

// truncateTail keeps the end of s so the caret stays visible.
func truncateTail(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

func showError(err error) {
	msg := err.Error()
	if errors.Is(err, search.ErrNotFound) {
		msg = "File not found.\n\n" + strings.TrimPrefix(msg, search.ErrNotFound.Error()+": ")
	}
	go func() {
		if derr := zenity.Error(msg, zenity.Title("Open failed"), zenity.ErrorIcon); derr != nil {
			log.Printf("[Overlay] Failed to show dialog: %v", derr)
		}
	}()
}
