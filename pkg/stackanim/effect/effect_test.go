package effect

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	last  Transform
	calls int
}

func (r *recorder) Render(_ context.Context, t Transform) {
	r.last = t
	r.calls++
}

func TestPrimitiveValues(t *testing.T) {
	p := Props{ContainerWidth: 320, ContainerHeight: 240, Duration: 100 * time.Millisecond}

	tests := []struct {
		name       string
		ctor       Constructor
		start, end Transform
	}{
		{"SlideLeftIn", SlideLeftIn, Transform{X: 320, Opacity: 1}, Transform{X: 0, Opacity: 1}},
		{"SlideLeftOut", SlideLeftOut, Transform{X: 0, Opacity: 1}, Transform{X: 320, Opacity: 1}},
		{"SlideRightIn", SlideRightIn, Transform{X: -320, Opacity: 1}, Transform{X: 0, Opacity: 1}},
		{"SlideRightOut", SlideRightOut, Transform{X: 0, Opacity: 1}, Transform{X: -320, Opacity: 1}},
		{"SlideUpIn", SlideUpIn, Transform{Y: 240, Opacity: 1}, Transform{Y: 0, Opacity: 1}},
		{"SlideUpOut", SlideUpOut, Transform{Y: 0, Opacity: 1}, Transform{Y: 240, Opacity: 1}},
		{"SlideDownIn", SlideDownIn, Transform{Y: -240, Opacity: 1}, Transform{Y: 0, Opacity: 1}},
		{"SlideDownOut", SlideDownOut, Transform{Y: 0, Opacity: 1}, Transform{Y: -240, Opacity: 1}},
		{"FadeIn", FadeIn, Transform{Opacity: 0}, Transform{Opacity: 1}},
		{"FadeOut", FadeOut, Transform{Opacity: 1}, Transform{Opacity: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := &recorder{}
			e := tt.ctor(p, child)

			e.Render(context.Background(), Identity())
			assert.Equal(t, tt.start, child.last)

			e.Tick(p.Duration)
			e.Render(context.Background(), Identity())
			assert.Equal(t, tt.end, child.last)
			assert.True(t, e.Done())
		})
	}
}

func TestPrimitiveComposesParentTransform(t *testing.T) {
	child := &recorder{}
	e := SlideUpIn(Props{ContainerHeight: 100, Duration: time.Second}, child)

	e.Render(context.Background(), Transform{X: 5, Y: 5, Opacity: 0.5, Width: 10, Height: 10})
	assert.Equal(t, Transform{X: 5, Y: 105, Opacity: 0.5, Width: 10, Height: 10}, child.last)
}

func TestPrimitiveOnFinishExactlyOnce(t *testing.T) {
	calls := 0
	e := FadeIn(Props{Duration: 10 * time.Millisecond, OnFinish: func() { calls++ }}, nil)

	e.Start()
	e.Start()
	e.Tick(20 * time.Millisecond)
	e.Tick(20 * time.Millisecond)
	e.Render(context.Background(), Identity())

	assert.Equal(t, 1, calls)
}

func TestPrimitiveRerenderDoesNotRestart(t *testing.T) {
	child := &recorder{}
	e := SlideLeftIn(Props{ContainerWidth: 100, Duration: 100 * time.Millisecond}, child)

	e.Render(context.Background(), Identity())
	e.Tick(100 * time.Millisecond)
	e.Render(context.Background(), Identity())
	e.Render(context.Background(), Identity())

	assert.Equal(t, 0.0, child.last.X)
	assert.Equal(t, 3, child.calls)
}

func TestPrimitiveDoesNotAdvanceBeforeStart(t *testing.T) {
	e := SlideLeftIn(Props{ContainerWidth: 100, Duration: 10 * time.Millisecond}, nil)
	e.Tick(time.Second)
	require.False(t, e.Done())

	e.Start()
	e.Tick(10 * time.Millisecond)
	assert.True(t, e.Done())
}

func TestPrimitiveStop(t *testing.T) {
	calls := 0
	e := SlideDownOut(Props{ContainerHeight: 50, Duration: 10 * time.Millisecond, OnFinish: func() { calls++ }}, nil)
	e.Start()
	e.Stop()
	e.Tick(time.Second)

	assert.False(t, e.Done())
	assert.Equal(t, 0, calls)
}

func TestGroupRendersInOrder(t *testing.T) {
	var order []int
	g := Group{
		NodeFunc(func(context.Context, Transform) { order = append(order, 1) }),
		nil,
		NodeFunc(func(context.Context, Transform) { order = append(order, 2) }),
	}

	g.Render(context.Background(), Identity())
	assert.Equal(t, []int{1, 2}, order)
}

func TestClampAnchorsAtOffset(t *testing.T) {
	tr := Identity().Translate(10, 20).Clamp(300, 200).Translate(-5, 0)
	assert.Equal(t, Transform{X: 5, Y: 20, Opacity: 1, Width: 300, Height: 200, ClipX: 10, ClipY: 20}, tr)
}
