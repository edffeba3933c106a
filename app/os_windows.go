// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"math"
	"sync"
	"syscall"
	"time"
	"unicode"

	"github.com/AllenDang/w32"

	"hostbridge/dragdrop"
	"hostbridge/f32"
	"hostbridge/input"
	"hostbridge/internal/logging"
	"hostbridge/internal/win32"
	"hostbridge/io/key"
	"hostbridge/io/pointer"
	"hostbridge/surface"
)

// View is one embedded engine view attached to a host window. The
// window keeps its own window procedure; the view subclasses it and
// intercepts the input traffic the engine needs.
type View struct {
	hwnd  syscall.Handle
	mgr   *surface.Manager
	surf  *surface.Surface
	tr    *input.Translator
	drops *dragdrop.ContextReconciler

	cursor   syscall.Handle
	captured bool

	// Legacy gesture messages report absolute values; deltas are
	// computed against the previous message.
	gesturePos  f32.Point
	gestureArgs uint64
}

var viewMap sync.Map // syscall.Handle -> *View

const viewSubclassID = 1

var (
	subclassOnce sync.Once
	subclassAddr uintptr
)

func subclassPtr() uintptr {
	subclassOnce.Do(func() {
		subclassAddr = syscall.NewCallback(subclassProc)
	})
	return subclassAddr
}

// Attach creates a committed composition surface for hwnd, hands it to
// the engine and installs the message hook. The window must be live
// and not already attached. On failure no surface remains allocated.
func Attach(hwnd uintptr, engine input.Engine, options ...Option) (*View, error) {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}
	h := syscall.Handle(hwnd)
	if _, ok := viewMap.Load(h); ok {
		return nil, ErrAlreadyAttached
	}
	mgr := surface.New()
	scale := float32(win32.GetDpiForWindow(h)) / win32.USER_DEFAULT_SCREEN_DPI
	surf, err := mgr.Attach(hwnd, surface.WithScale(scale))
	if err != nil {
		return nil, err
	}
	if err := engine.AcceptSurface(surf); err != nil {
		mgr.Detach(surf)
		return nil, fmt.Errorf("app: engine rejected surface: %w", err)
	}
	v := &View{
		hwnd: h,
		mgr:  mgr,
		surf: surf,
	}
	if arrow, err := win32.LoadCursor(w32.IDC_ARROW); err == nil {
		v.cursor = arrow
	}
	v.tr = input.New(engine, &sampler{hwnd: h},
		input.WithScale(scale),
		input.WithScaleUpdater(func(s float32) error {
			return mgr.SetScale(surf, s)
		}),
		input.WithLeaveTracker(func() {
			if err := win32.TrackMouseLeave(h); err != nil {
				logging.Logger().Debug("mouse leave tracking failed", "err", err)
			}
		}),
		input.WithCursorApplier(v.applyCursor),
		input.WithCandidateSync(v.moveCandidateWindow),
	)
	v.drops = dragdrop.NewContextReconciler(cfg.onDrop)
	if err := win32.SetWindowSubclass(h, subclassPtr(), viewSubclassID, 0); err != nil {
		mgr.Detach(surf)
		return nil, fmt.Errorf("app: %v", err)
	}
	viewMap.Store(h, v)
	return v, nil
}

// Detach removes the message hook and tears down the surface. The
// window survives; only the embedded view goes away.
func (v *View) Detach() {
	win32.RemoveWindowSubclass(v.hwnd, subclassPtr(), viewSubclassID)
	viewMap.Delete(v.hwnd)
	v.mgr.Detach(v.surf)
}

// Surface returns the view's composition surface.
func (v *View) Surface() *surface.Surface {
	return v.surf
}

// SetCaret updates the position of the engine's text caret, in view
// coordinates. The IME candidate window follows it.
func (v *View) SetCaret(p f32.Point) {
	v.tr.SetCaret(p)
}

// DragEnter, DragMotion, DragDrop and DragLeave are the engine's
// drag-context notifications. The engine glue calls them as its native
// drag signals fire; native drop handling proceeds regardless.
func (v *View) DragEnter(id uint64, pos f32.Point) {
	v.drops.Enter(id, pos)
}

func (v *View) DragMotion(id uint64, ctx dragdrop.Context, pos f32.Point) {
	v.drops.Motion(id, ctx, pos)
}

func (v *View) DragDrop(id uint64, pos f32.Point) {
	v.drops.Drop(id, pos)
}

func (v *View) DragLeave(id uint64, ctx dragdrop.Context) {
	v.drops.Leave(id, ctx)
}

func subclassProc(hwnd syscall.Handle, msg uint32, wParam, lParam, id, refData uintptr) uintptr {
	view, exists := viewMap.Load(hwnd)
	if !exists {
		return win32.DefSubclassProc(hwnd, msg, wParam, lParam)
	}
	v := view.(*View)

	if msg == win32.WM_UNICHAR && wParam == win32.UNICODE_NOCHAR {
		// Tell the system that we accept WM_UNICHAR messages.
		return w32.TRUE
	}
	m, ok := v.decode(msg, wParam, lParam)
	if !ok {
		return win32.DefSubclassProc(hwnd, msg, wParam, lParam)
	}
	res := v.tr.Handle(m)
	v.updateCapture(m, res)
	if res == input.Forwarded || observed(m.Category) {
		return win32.DefSubclassProc(hwnd, msg, wParam, lParam)
	}
	if msg == w32.WM_SETCURSOR {
		return w32.TRUE
	}
	return 0
}

// observed reports categories the translator only watches; the host
// window still needs its default processing for them.
func observed(c input.Category) bool {
	switch c {
	case input.Activate, input.MouseActivate, input.PointerActivate,
		input.FocusGained, input.FocusLost, input.DPIChanged:
		return true
	}
	return false
}

// updateCapture mirrors the translated button state into mouse
// capture, so drags that leave the window keep delivering moves.
func (v *View) updateCapture(m input.Msg, res input.Result) {
	if res != input.Handled {
		return
	}
	switch m.Category {
	case input.MouseDown, input.NCMouseDown:
		if !v.captured && v.tr.Buttons() != 0 {
			win32.SetCapture(v.hwnd)
			v.captured = true
		}
	case input.MouseUp, input.NCMouseUp:
		if v.captured && v.tr.Buttons() == 0 {
			// Flag first: releasing delivers WM_CAPTURECHANGED back to
			// this window synchronously, and a self-inflicted release
			// must not translate as a capture steal.
			v.captured = false
			win32.ReleaseCapture()
		}
	case input.CaptureChanged, input.PointerCaptureChanged:
		v.captured = false
	}
}

func (v *View) decode(msg uint32, wParam, lParam uintptr) (input.Msg, bool) {
	m := input.Msg{Time: messageTime()}
	switch msg {
	case w32.WM_LBUTTONDOWN:
		mouseMsg(&m, input.MouseDown, pointer.ButtonPrimary, lParam)
	case w32.WM_LBUTTONUP:
		mouseMsg(&m, input.MouseUp, pointer.ButtonPrimary, lParam)
	case w32.WM_RBUTTONDOWN:
		mouseMsg(&m, input.MouseDown, pointer.ButtonSecondary, lParam)
	case w32.WM_RBUTTONUP:
		mouseMsg(&m, input.MouseUp, pointer.ButtonSecondary, lParam)
	case w32.WM_MBUTTONDOWN:
		mouseMsg(&m, input.MouseDown, pointer.ButtonTertiary, lParam)
	case w32.WM_MBUTTONUP:
		mouseMsg(&m, input.MouseUp, pointer.ButtonTertiary, lParam)
	case win32.WM_XBUTTONDOWN:
		mouseMsg(&m, input.MouseDown, xButton(wParam), lParam)
	case win32.WM_XBUTTONUP:
		mouseMsg(&m, input.MouseUp, xButton(wParam), lParam)
	case w32.WM_MOUSEMOVE:
		m.Category = input.MouseMove
		m.Position = coordsFromLParam(lParam)
		m.Modifiers = getModifiers()
	case w32.WM_MOUSEWHEEL:
		v.wheelMsg(&m, wParam, lParam, false)
	case win32.WM_MOUSEHWHEEL:
		v.wheelMsg(&m, wParam, lParam, true)
	case win32.WM_MOUSELEAVE:
		m.Category = input.MouseLeave
	case win32.WM_NCLBUTTONDOWN:
		ncMouseMsg(v.hwnd, &m, input.NCMouseDown, pointer.ButtonPrimary, lParam)
	case win32.WM_NCLBUTTONUP:
		ncMouseMsg(v.hwnd, &m, input.NCMouseUp, pointer.ButtonPrimary, lParam)
	case win32.WM_NCRBUTTONDOWN:
		ncMouseMsg(v.hwnd, &m, input.NCMouseDown, pointer.ButtonSecondary, lParam)
	case win32.WM_NCRBUTTONUP:
		ncMouseMsg(v.hwnd, &m, input.NCMouseUp, pointer.ButtonSecondary, lParam)
	case win32.WM_NCMBUTTONDOWN:
		ncMouseMsg(v.hwnd, &m, input.NCMouseDown, pointer.ButtonTertiary, lParam)
	case win32.WM_NCMBUTTONUP:
		ncMouseMsg(v.hwnd, &m, input.NCMouseUp, pointer.ButtonTertiary, lParam)
	case win32.WM_NCMOUSEMOVE:
		ncMouseMsg(v.hwnd, &m, input.NCMouseMove, 0, lParam)
	case win32.WM_POINTERDOWN:
		pointerMsg(&m, input.PointerDown, wParam)
	case win32.WM_POINTERUP:
		pointerMsg(&m, input.PointerUp, wParam)
	case win32.WM_POINTERUPDATE:
		pointerMsg(&m, input.PointerUpdate, wParam)
	case win32.WM_POINTERENTER:
		pointerMsg(&m, input.PointerEnter, wParam)
	case win32.WM_POINTERLEAVE:
		pointerMsg(&m, input.PointerLeave, wParam)
	case win32.WM_POINTERWHEEL, win32.WM_POINTERHWHEEL:
		pointerMsg(&m, input.PointerWheel, wParam)
		dist := float32(int16(wParam >> 16))
		if msg == win32.WM_POINTERHWHEEL {
			m.Scroll.X = dist
		} else {
			m.Scroll.Y = -dist
		}
	case win32.WM_POINTERACTIVATE:
		pointerMsg(&m, input.PointerActivate, wParam)
	case win32.WM_POINTERCAPTURECHANGED:
		pointerMsg(&m, input.PointerCaptureChanged, wParam)
	case w32.WM_KEYDOWN, w32.WM_SYSKEYDOWN:
		return keyMsg(m, input.KeyDown, wParam)
	case w32.WM_KEYUP, w32.WM_SYSKEYUP:
		return keyMsg(m, input.KeyUp, wParam)
	case w32.WM_CHAR, w32.WM_SYSCHAR, win32.WM_UNICHAR:
		r := rune(wParam)
		if !unicode.IsPrint(r) {
			return m, false
		}
		m.Category = input.Char
		m.Text = string(r)
		m.Modifiers = getModifiers()
	case win32.WM_DEADCHAR, win32.WM_SYSDEADCHAR:
		m.Category = input.DeadChar
		m.Text = string(rune(wParam))
		m.Modifiers = getModifiers()
	case win32.WM_IME_STARTCOMPOSITION:
		m.Category = input.IMEStart
	case win32.WM_IME_COMPOSITION:
		return v.compositionMsg(m, lParam)
	case win32.WM_IME_ENDCOMPOSITION:
		m.Category = input.IMEEnd
	case win32.WM_GESTURE:
		return v.gestureMsg(m, lParam)
	case win32.WM_CAPTURECHANGED:
		// Only an external steal concerns the translator; our own
		// release and re-capture notifications pass through.
		if !v.captured || lParam == uintptr(v.hwnd) {
			return m, false
		}
		m.Category = input.CaptureChanged
	case win32.WM_DPICHANGED:
		m.Category = input.DPIChanged
		m.Scale = float32(wParam&0xffff) / win32.USER_DEFAULT_SCREEN_DPI
	case w32.WM_ACTIVATE:
		if wParam&0xffff == 0 {
			return m, false
		}
		m.Category = input.Activate
	case win32.WM_MOUSEACTIVATE:
		m.Category = input.MouseActivate
	case w32.WM_SETFOCUS:
		m.Category = input.FocusGained
	case w32.WM_KILLFOCUS:
		m.Category = input.FocusLost
	case w32.WM_SETCURSOR:
		if lParam&0xffff != w32.HTCLIENT {
			return m, false
		}
		m.Category = input.CursorQuery
	default:
		return m, false
	}
	return m, true
}

func mouseMsg(m *input.Msg, cat input.Category, btn pointer.Buttons, lParam uintptr) {
	m.Category = cat
	m.Buttons = btn
	m.Position = coordsFromLParam(lParam)
	m.Modifiers = getModifiers()
}

// Non-client coordinates are in screen space.
func ncMouseMsg(hwnd syscall.Handle, m *input.Msg, cat input.Category, btn pointer.Buttons, lParam uintptr) {
	m.Category = cat
	m.Buttons = btn
	m.Position = screenToClient(hwnd, lParam)
	m.Modifiers = getModifiers()
}

func pointerMsg(m *input.Msg, cat input.Category, wParam uintptr) {
	m.Category = cat
	m.PointerID = uint32(wParam & 0xffff)
	m.Modifiers = getModifiers()
}

func keyMsg(m input.Msg, cat input.Category, wParam uintptr) (input.Msg, bool) {
	n, ok := convertKeyCode(wParam)
	if !ok {
		return m, false
	}
	m.Category = cat
	m.Name = n
	m.Code = uint32(wParam)
	m.Modifiers = getModifiers()
	return m, true
}

func (v *View) wheelMsg(m *input.Msg, wParam, lParam uintptr, horizontal bool) {
	m.Category = input.MouseWheel
	// Wheel coordinates are in screen space, in contrast to the other
	// mouse messages.
	m.Position = screenToClient(v.hwnd, lParam)
	m.Modifiers = getModifiers()
	dist := float32(int16(wParam >> 16))
	if horizontal {
		m.Scroll.X = dist
	} else {
		m.Scroll.Y = -dist
	}
}

func (v *View) compositionMsg(m input.Msg, lParam uintptr) (input.Msg, bool) {
	imc := win32.ImmGetContext(v.hwnd)
	if imc == 0 {
		return m, false
	}
	defer win32.ImmReleaseContext(v.hwnd, imc)
	switch {
	case lParam&win32.GCS_RESULTSTR != 0:
		m.Category = input.IMEEnd
		m.Text = win32.ImmGetCompositionString(imc, win32.GCS_RESULTSTR)
		m.Caret = len([]rune(m.Text))
	case lParam&win32.GCS_COMPSTR != 0:
		m.Category = input.IMEUpdate
		m.Text = win32.ImmGetCompositionString(imc, win32.GCS_COMPSTR)
		m.Caret = len([]rune(m.Text))
		if lParam&win32.GCS_CURSORPOS != 0 {
			m.Caret = win32.ImmGetCompositionValue(imc, win32.GCS_CURSORPOS)
		}
	default:
		return m, false
	}
	return m, true
}

func (v *View) gestureMsg(m input.Msg, lParam uintptr) (input.Msg, bool) {
	gi, err := win32.GetGestureInfo(lParam)
	if err != nil {
		return m, false
	}
	defer win32.CloseGestureInfoHandle(lParam)
	pt := win32.Point{X: int32(gi.PtsLocation[0]), Y: int32(gi.PtsLocation[1])}
	win32.ScreenToClient(v.hwnd, &pt)
	pos := f32.Pt(float32(pt.X), float32(pt.Y))
	m.Category = input.Gesture
	m.Position = pos
	switch gi.ID {
	case win32.GID_BEGIN:
		m.GestureKind = input.GestureBegin
	case win32.GID_END:
		m.GestureKind = input.GestureEnd
	case win32.GID_PAN:
		m.GestureKind = input.GesturePan
		m.GestureDelta = pos.Sub(v.gesturePos)
	case win32.GID_ZOOM:
		m.GestureKind = input.GesturePinch
		m.GestureScale = 1
		if v.gestureArgs != 0 {
			m.GestureScale = float32(gi.Arguments) / float32(v.gestureArgs)
		}
	case win32.GID_ROTATE:
		m.GestureKind = input.GestureRotate
		m.GestureAngle = rotateAngle(gi.Arguments) - rotateAngle(v.gestureArgs)
	default:
		return m, false
	}
	v.gesturePos = pos
	v.gestureArgs = gi.Arguments
	return m, true
}

// rotateAngle decodes the cumulative rotation argument to degrees.
func rotateAngle(arg uint64) float32 {
	rad := (float64(arg&0xffff)/65535.0)*4*math.Pi - 2*math.Pi
	return float32(rad * 180 / math.Pi)
}

func (v *View) applyCursor(c pointer.Cursor) {
	h, err := loadCursor(c)
	if err != nil {
		logging.Logger().Debug("cursor load failed", "cursor", c, "err", err)
		return
	}
	v.cursor = h
	win32.SetCursor(h)
}

func loadCursor(c pointer.Cursor) (syscall.Handle, error) {
	var id uint16
	switch c {
	case pointer.CursorDefault:
		id = w32.IDC_ARROW
	case pointer.CursorNone:
		return 0, nil
	case pointer.CursorText:
		id = w32.IDC_IBEAM
	case pointer.CursorPointer:
		id = w32.IDC_HAND
	case pointer.CursorCrosshair:
		id = w32.IDC_CROSS
	case pointer.CursorColResize:
		id = w32.IDC_SIZEWE
	case pointer.CursorRowResize:
		id = w32.IDC_SIZENS
	case pointer.CursorGrab, pointer.CursorGrabbing:
		id = w32.IDC_SIZEALL
	case pointer.CursorNotAllowed:
		id = w32.IDC_NO
	case pointer.CursorWait:
		id = w32.IDC_WAIT
	case pointer.CursorProgress:
		id = w32.IDC_APPSTARTING
	default:
		id = w32.IDC_ARROW
	}
	return win32.LoadCursor(id)
}

// moveCandidateWindow places the IME candidate window at the caret.
// The caret is in view coordinates; the candidate window wants client
// device pixels.
func (v *View) moveCandidateWindow(p f32.Point) {
	imc := win32.ImmGetContext(v.hwnd)
	if imc == 0 {
		return
	}
	defer win32.ImmReleaseContext(v.hwnd, imc)
	scale := v.tr.Scale()
	pt := win32.Point{
		X: int32(p.X * scale),
		Y: int32(p.Y * scale),
	}
	if err := win32.ImmSetCandidateWindow(imc, pt); err != nil {
		logging.Logger().Debug("candidate window move failed", "err", err)
	}
}

func getModifiers() key.Modifiers {
	var kmods key.Modifiers
	if win32.GetKeyState(w32.VK_LWIN)&0x1000 != 0 || win32.GetKeyState(w32.VK_RWIN)&0x1000 != 0 {
		kmods |= key.ModSuper
	}
	if win32.GetKeyState(w32.VK_MENU)&0x1000 != 0 {
		kmods |= key.ModAlt
	}
	if win32.GetKeyState(w32.VK_CONTROL)&0x1000 != 0 {
		kmods |= key.ModCtrl
	}
	if win32.GetKeyState(w32.VK_SHIFT)&0x1000 != 0 {
		kmods |= key.ModShift
	}
	return kmods
}

func xButton(wParam uintptr) pointer.Buttons {
	if wParam>>16 == 2 {
		return pointer.ButtonQuinary
	}
	return pointer.ButtonQuaternary
}

func coordsFromLParam(lParam uintptr) f32.Point {
	x := int(int16(lParam & 0xffff))
	y := int(int16((lParam >> 16) & 0xffff))
	return f32.Pt(float32(x), float32(y))
}

func screenToClient(hwnd syscall.Handle, lParam uintptr) f32.Point {
	pt := win32.Point{
		X: int32(int16(lParam & 0xffff)),
		Y: int32(int16((lParam >> 16) & 0xffff)),
	}
	win32.ScreenToClient(hwnd, &pt)
	return f32.Pt(float32(pt.X), float32(pt.Y))
}

func messageTime() time.Duration {
	return time.Duration(win32.GetMessageTime()) * time.Millisecond
}

func convertKeyCode(code uintptr) (key.Name, bool) {
	if '0' <= code && code <= '9' || 'A' <= code && code <= 'Z' {
		return key.Name(rune(code)), true
	}
	var n key.Name
	switch code {
	case w32.VK_ESCAPE:
		n = key.NameEscape
	case w32.VK_LEFT:
		n = key.NameLeftArrow
	case w32.VK_RIGHT:
		n = key.NameRightArrow
	case w32.VK_RETURN:
		n = key.NameReturn
	case w32.VK_UP:
		n = key.NameUpArrow
	case w32.VK_DOWN:
		n = key.NameDownArrow
	case w32.VK_HOME:
		n = key.NameHome
	case w32.VK_END:
		n = key.NameEnd
	case w32.VK_BACK:
		n = key.NameDeleteBackward
	case w32.VK_DELETE:
		n = key.NameDeleteForward
	case w32.VK_PRIOR:
		n = key.NamePageUp
	case w32.VK_NEXT:
		n = key.NamePageDown
	case w32.VK_F1:
		n = key.NameF1
	case w32.VK_F2:
		n = key.NameF2
	case w32.VK_F3:
		n = key.NameF3
	case w32.VK_F4:
		n = key.NameF4
	case w32.VK_F5:
		n = key.NameF5
	case w32.VK_F6:
		n = key.NameF6
	case w32.VK_F7:
		n = key.NameF7
	case w32.VK_F8:
		n = key.NameF8
	case w32.VK_F9:
		n = key.NameF9
	case w32.VK_F10:
		n = key.NameF10
	case w32.VK_F11:
		n = key.NameF11
	case w32.VK_F12:
		n = key.NameF12
	case w32.VK_TAB:
		n = key.NameTab
	case w32.VK_SPACE:
		n = key.NameSpace
	case w32.VK_OEM_1:
		n = ";"
	case w32.VK_OEM_PLUS:
		n = "+"
	case w32.VK_OEM_COMMA:
		n = ","
	case w32.VK_OEM_MINUS:
		n = "-"
	case w32.VK_OEM_PERIOD:
		n = "."
	case w32.VK_OEM_2:
		n = "/"
	case w32.VK_OEM_3:
		n = "`"
	case w32.VK_OEM_4:
		n = "["
	case w32.VK_OEM_5, w32.VK_OEM_102:
		n = "\\"
	case w32.VK_OEM_6:
		n = "]"
	case w32.VK_OEM_7:
		n = "'"
	case w32.VK_CONTROL:
		n = key.NameCtrl
	case w32.VK_SHIFT:
		n = key.NameShift
	case w32.VK_MENU:
		n = key.NameAlt
	case w32.VK_LWIN, w32.VK_RWIN:
		n = key.NameSuper
	default:
		return "", false
	}
	return n, true
}

// sampler queries the platform pointer record for a pointer id. The
// device kind priority is touch, then pen, then the generic record.
type sampler struct {
	hwnd syscall.Handle
}

func (s *sampler) Sample(id uint32, hint pointer.Source) (pointer.Sample, bool) {
	typ, err := win32.GetPointerType(id)
	if err != nil {
		// The contact ended before the query ran.
		return pointer.Sample{}, false
	}
	switch typ {
	case win32.PT_TOUCH, win32.PT_TOUCHPAD:
		ti, err := win32.GetPointerTouchInfo(id)
		if err != nil {
			return pointer.Sample{}, false
		}
		raw := input.RawTouch{RawInfo: s.rawInfo(ti.PointerInfo)}
		if ti.TouchMask&win32.TOUCH_MASK_CONTACTAREA != 0 {
			raw.HasContact = true
			raw.Contact = s.clientRect(ti.Contact)
		}
		if ti.TouchMask&win32.TOUCH_MASK_PRESSURE != 0 {
			raw.HasPressure = true
			raw.Pressure = ti.Pressure
		}
		return input.TouchSample(raw, win32.PressureMax), true
	case win32.PT_PEN:
		pi, err := win32.GetPointerPenInfo(id)
		if err != nil {
			return pointer.Sample{}, false
		}
		raw := input.RawPen{RawInfo: s.rawInfo(pi.PointerInfo)}
		if pi.PenMask&win32.PEN_MASK_PRESSURE != 0 {
			raw.HasPressure = true
			raw.Pressure = pi.Pressure
		}
		if pi.PenMask&(win32.PEN_MASK_TILT_X|win32.PEN_MASK_TILT_Y) != 0 {
			raw.HasTilt = true
			raw.TiltX, raw.TiltY = pi.TiltX, pi.TiltY
		}
		if pi.PenMask&win32.PEN_MASK_ROTATION != 0 {
			raw.HasRotation = true
			raw.Rotation = pi.Rotation
		}
		return input.PenSample(raw, win32.PressureMax), true
	default:
		pi, err := win32.GetPointerInfo(id)
		if err != nil {
			return pointer.Sample{}, false
		}
		return input.MouseSample(s.rawInfo(pi)), true
	}
}

// Pointer records report screen coordinates.
func (s *sampler) rawInfo(pi win32.PointerInfo) input.RawInfo {
	pt := pi.PixelLocation
	win32.ScreenToClient(s.hwnd, &pt)
	return input.RawInfo{
		ID:       pi.PointerID,
		Position: f32.Pt(float32(pt.X), float32(pt.Y)),
		Flags:    pi.PointerFlags,
		Time:     time.Duration(pi.Time) * time.Millisecond,
	}
}

func (s *sampler) clientRect(r win32.Rect) f32.Rectangle {
	min := win32.Point{X: r.Left, Y: r.Top}
	max := win32.Point{X: r.Right, Y: r.Bottom}
	win32.ScreenToClient(s.hwnd, &min)
	win32.ScreenToClient(s.hwnd, &max)
	return f32.Rect(float32(min.X), float32(min.Y), float32(max.X), float32(max.Y))
}
