// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	giowidget "gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/widgetcollection/giox/anim"
	"github.com/widgetcollection/giox/flow"
	"github.com/widgetcollection/giox/internal/colorutil"
	"github.com/widgetcollection/giox/particle"
	"github.com/widgetcollection/giox/widget"
)

var (
	backgroundColor = color.NRGBA{R: 0xf4, G: 0xf4, B: 0xf8, A: 0xff}
	fieldColor      = color.NRGBA{R: 0x1b, G: 0x1f, B: 0x3a, A: 0xff}
	accentColor     = color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	white           = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the demo window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := newDemo(configFromContext(ctx), time.Now())
			if err != nil {
				return err
			}
			go func() {
				err := d.run(ctx, new(app.Window))
				if err != nil && !errors.Is(err, context.Canceled) {
					loggerFromContext(ctx).Error("demo failed", "err", err)
				}
				os.Exit(ExitCode(err))
			}()
			app.Main()
			return nil
		},
	}
}

// demo is the state of the demo window. Everything but the queue is
// owned by the window goroutine.
type demo struct {
	cfg      Config
	theme    *material.Theme
	flow     flow.Flow
	chips    []flow.FlowChild
	diffuser *particle.Diffuser
	refresh  giowidget.Clickable
	// ring shows the progress through the particle ticker cycle.
	ring    widget.ProgressRing
	spinner *anim.Ticker
	queue   *anim.Queue
}

func newDemo(cfg Config, now time.Time) (*demo, error) {
	orient, err := cfg.Flow.orientation()
	if err != nil {
		return nil, fmt.Errorf("widgetdemo: %w", err)
	}
	align, err := cfg.Flow.alignment()
	if err != nil {
		return nil, fmt.Errorf("widgetdemo: %w", err)
	}
	col, err := cfg.Particles.color()
	if err != nil {
		return nil, fmt.Errorf("widgetdemo: %w", err)
	}

	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	d := &demo{
		cfg:   cfg,
		theme: th,
		flow: flow.Flow{
			Orientation:  orient,
			Alignment:    align,
			MainSpacing:  unit.Dp(cfg.Flow.MainSpacing),
			CrossSpacing: unit.Dp(cfg.Flow.CrossSpacing),
			Inset:        layout.UniformInset(unit.Dp(8)),
		},
		diffuser: particle.NewDiffuser(rand.New(rand.NewSource(cfg.Particles.seed(now)))),
		ring: widget.ProgressRing{
			Color:           accentColor,
			BackgroundColor: colorutil.WithAlpha(fieldColor, 0x30),
			TextColor:       fieldColor,
			Thickness:       unit.Dp(4),
			TextSize:        unit.Sp(11),
			Text:            "%progress%",
			Bold:            true,
		},
	}
	d.diffuser.Color = col
	d.diffuser.InnerRadius = unit.Dp(cfg.Particles.InnerRadius)
	d.diffuser.Count = cfg.Particles.Count
	for _, item := range cfg.Flow.Items {
		d.chips = append(d.chips, flow.Child(d.chip(item)))
	}
	return d, nil
}

// run drives w until it is closed or ctx is cancelled.
func (d *demo) run(ctx context.Context, w *app.Window) error {
	logger := loggerFromContext(ctx)
	w.Option(
		app.Title(d.cfg.Window.Title),
		app.Size(unit.Dp(d.cfg.Window.Width), unit.Dp(d.cfg.Window.Height)),
	)
	stop := context.AfterFunc(ctx, func() {
		w.Perform(system.ActionClose)
	})
	defer stop()

	d.queue = anim.NewQueue(w.Invalidate)
	p := d.cfg.Particles
	d.diffuser.Attach(d.queue, p.Interval.Duration, p.Cycle.Duration)
	d.spinner = anim.NewTicker(d.queue, p.Interval.Duration, p.Cycle.Duration)
	d.spinner.Start(d.spin)
	logger.Debug("ticker started", "interval", p.Interval, "cycle", p.Cycle, "particles", p.Count)
	defer func() {
		d.spinner.Stop()
		d.diffuser.Detach()
		logger.Debug("ticker stopped")
	}()

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			logger.Debug("window closed")
			if e.Err != nil {
				return fmt.Errorf("widgetdemo: window: %w", e.Err)
			}
			return ctx.Err()
		case app.FrameEvent:
			d.queue.Drain()
			gtx := app.NewContext(&ops, e)
			if d.refresh.Clicked(gtx) {
				logger.Debug("refresh requested")
				d.diffuser.Refresh()
			}
			d.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (d *demo) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, backgroundColor, clip.Rect{Max: gtx.Constraints.Max}.Op())
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return d.flow.Layout(gtx, d.chips...)
		}),
		layout.Rigid(d.layoutDecorations),
		layout.Rigid(d.layoutControls),
		layout.Flexed(1, d.layoutField),
	)
}

// chip is a flow item: a label on a small shadowed card.
func (d *demo) chip(label string) layout.Widget {
	card := widget.Card{
		Color:         white,
		ShadowColor:   colorutil.WithAlpha(fieldColor, 0x60),
		CornerRadius:  unit.Dp(12),
		ShadowRadius:  unit.Dp(3),
		ShadowOffsetY: unit.Dp(1),
		Margin:        layout.Inset{Top: 4, Bottom: 4, Left: 10, Right: 10},
	}
	return func(gtx layout.Context) layout.Dimensions {
		return card.Layout(gtx, material.Body2(d.theme, label).Layout)
	}
}

func (d *demo) layoutDecorations(gtx layout.Context) layout.Dimensions {
	square := func(w layout.Widget) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints = layout.Exact(image.Pt(gtx.Dp(64), gtx.Dp(64)))
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, w)
		})
	}
	marker := func(pos widget.Position, style widget.MarkerStyle, text string) layout.FlexChild {
		m := widget.Marker{Text: text, TextColor: white, Color: accentColor, Position: pos, Style: style}
		return square(func(gtx layout.Context) layout.Dimensions {
			return m.Layout(gtx, d.theme)
		})
	}
	triangle := func(dir widget.Direction) layout.FlexChild {
		return square(widget.Triangle{Color: fieldColor, Direction: dir}.Layout)
	}
	return layout.Flex{}.Layout(gtx,
		marker(widget.TopLeft, widget.TriangleMarker, "NEW"),
		marker(widget.TopRight, widget.RoundedTriangle, "HOT"),
		marker(widget.BottomLeft, widget.TruncatedTriangle, "TOP"),
		marker(widget.BottomRight, widget.RoundedTriangle, "SALE"),
		triangle(widget.Down),
		triangle(widget.Right),
	)
}

func (d *demo) layoutControls(gtx layout.Context) layout.Dimensions {
	margin := layout.Inset{Left: 8, Right: 8, Bottom: 4}
	hint := widget.Bubble{
		Color:        white,
		Side:         widget.SideLeft,
		ArrowWidth:   unit.Dp(10),
		ArrowHeight:  unit.Dp(6),
		CornerRadius: unit.Dp(6),
		Shadow:       true,
		ShadowColor:  colorutil.WithAlpha(fieldColor, 0x50),
		ShadowRadius: unit.Dp(3),
		Margin:       layout.Inset{Top: 4, Bottom: 4, Left: 8, Right: 8},
	}
	return widget.Linear{}.Layout(gtx,
		widget.LinearChild{Margin: margin, Widget: material.Body1(d.theme, "Particle diffusion").Layout},
		widget.LinearChild{Margin: margin, Widget: func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(material.Button(d.theme, &d.refresh, "Refresh").Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return hint.Layout(gtx, material.Caption(d.theme, "Refresh rebuilds the particle field.").Layout)
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.E.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						gtx.Constraints = layout.Exact(image.Pt(gtx.Dp(40), gtx.Dp(40)))
						return d.ring.Layout(gtx, d.theme)
					})
				}),
			)
		}},
	)
}

// spin moves the ring to the ticker's position in its cycle.
func (d *demo) spin(fraction float32) {
	d.ring.Progress = fraction * 100
}

func (d *demo) layoutField(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, fieldColor, clip.Rect{Max: gtx.Constraints.Max}.Op())
	return d.diffuser.Layout(gtx)
}
