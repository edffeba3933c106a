// SPDX-License-Identifier: Unlicense OR MIT

// Package win32 contains the Win32 bindings the bridge needs beyond
// what golang.org/x/sys/windows and w32 provide: the pointer input
// family, IME composition queries, mouse-leave tracking, window
// subclassing and the DirectComposition entry points.
package win32

import (
	"fmt"
	"syscall"
	"unsafe"

	gowindows "golang.org/x/sys/windows"
)

type Point struct {
	X, Y int32
}

type Rect struct {
	Left, Top, Right, Bottom int32
}

// PointerInfo is the POINTER_INFO structure shared by all pointer
// kinds.
type PointerInfo struct {
	PointerType         uint32
	PointerID           uint32
	FrameID             uint32
	PointerFlags        uint32
	SourceDevice        syscall.Handle
	HwndTarget          syscall.Handle
	PixelLocation       Point
	HimetricLocation    Point
	PixelLocationRaw    Point
	HimetricLocationRaw Point
	Time                uint32
	HistoryCount        uint32
	InputData           int32
	KeyStates           uint32
	PerformanceCount    uint64
	ButtonChangeType    int32
}

// PointerTouchInfo is the POINTER_TOUCH_INFO structure.
type PointerTouchInfo struct {
	PointerInfo PointerInfo
	TouchFlags  uint32
	TouchMask   uint32
	Contact     Rect
	ContactRaw  Rect
	Orientation uint32
	Pressure    uint32
}

// PointerPenInfo is the POINTER_PEN_INFO structure.
type PointerPenInfo struct {
	PointerInfo PointerInfo
	PenFlags    uint32
	PenMask     uint32
	Pressure    uint32
	Rotation    uint32
	TiltX       int32
	TiltY       int32
}

// GestureInfo is the GESTUREINFO structure delivered with WM_GESTURE.
type GestureInfo struct {
	CbSize      uint32
	Flags       uint32
	ID          uint32
	HwndTarget  syscall.Handle
	PtsLocation [2]int16
	InstanceID  uint32
	SequenceID  uint32
	Arguments   uint64
	CbExtraArgs uint32
}

// CandidateForm positions the IME candidate window.
type CandidateForm struct {
	Index        uint32
	Style        uint32
	PtCurrentPos Point
	RcArea       Rect
}

// TrackMouseEventData is the TRACKMOUSEEVENT structure.
type TrackMouseEventData struct {
	CbSize      uint32
	DwFlags     uint32
	HwndTrack   syscall.Handle
	DwHoverTime uint32
}

const (
	WM_MOUSEACTIVATE        = 0x0021
	WM_NCMOUSEMOVE          = 0x00A0
	WM_NCLBUTTONDOWN        = 0x00A1
	WM_NCLBUTTONUP          = 0x00A2
	WM_NCRBUTTONDOWN        = 0x00A4
	WM_NCRBUTTONUP          = 0x00A5
	WM_NCMBUTTONDOWN        = 0x00A7
	WM_NCMBUTTONUP          = 0x00A8
	WM_IME_STARTCOMPOSITION = 0x010D
	WM_IME_ENDCOMPOSITION   = 0x010E
	WM_IME_COMPOSITION      = 0x010F
	WM_GESTURE              = 0x0119
	WM_CAPTURECHANGED       = 0x0215
	WM_TOUCH                = 0x0240
	WM_POINTERUPDATE        = 0x0245
	WM_POINTERDOWN          = 0x0246
	WM_POINTERUP            = 0x0247
	WM_POINTERENTER         = 0x0249
	WM_POINTERLEAVE         = 0x024A
	WM_POINTERACTIVATE      = 0x024B
	WM_POINTERCAPTURECHANGED = 0x024C
	WM_POINTERWHEEL         = 0x024E
	WM_POINTERHWHEEL        = 0x024F
	WM_MOUSELEAVE           = 0x02A3
	WM_DPICHANGED           = 0x02E0
	WM_UNICHAR              = 0x0109
	WM_DEADCHAR             = 0x0103
	WM_SYSDEADCHAR          = 0x0107
	WM_MOUSEHWHEEL          = 0x020E
	WM_XBUTTONDOWN          = 0x020B
	WM_XBUTTONUP            = 0x020C

	UNICODE_NOCHAR = 0xFFFF

	PT_POINTER  = 1
	PT_TOUCH    = 2
	PT_PEN      = 3
	PT_MOUSE    = 4
	PT_TOUCHPAD = 5

	POINTER_FLAG_INCONTACT    = 0x00000004
	POINTER_FLAG_FIRSTBUTTON  = 0x00000010
	POINTER_FLAG_SECONDBUTTON = 0x00000020
	POINTER_FLAG_THIRDBUTTON  = 0x00000040
	POINTER_FLAG_FOURTHBUTTON = 0x00000080
	POINTER_FLAG_FIFTHBUTTON  = 0x00000100
	POINTER_FLAG_DOWN         = 0x00010000
	POINTER_FLAG_UPDATE       = 0x00020000
	POINTER_FLAG_UP           = 0x00040000

	TOUCH_MASK_CONTACTAREA = 0x00000001
	TOUCH_MASK_ORIENTATION = 0x00000002
	TOUCH_MASK_PRESSURE    = 0x00000004

	PEN_MASK_PRESSURE = 0x00000001
	PEN_MASK_ROTATION = 0x00000002
	PEN_MASK_TILT_X   = 0x00000004
	PEN_MASK_TILT_Y   = 0x00000008

	// PressureMax is the documented maximum of the pointer pressure
	// range on Windows.
	PressureMax = 1024

	GID_BEGIN  = 1
	GID_END    = 2
	GID_ZOOM   = 3
	GID_PAN    = 4
	GID_ROTATE = 5

	GCS_COMPSTR   = 0x0008
	GCS_CURSORPOS = 0x0080
	GCS_RESULTSTR = 0x0800

	CFS_CANDIDATEPOS = 0x0040

	TME_LEAVE = 0x00000002

	USER_DEFAULT_SCREEN_DPI = 96

	D3D_DRIVER_TYPE_HARDWARE        = 1
	D3D11_CREATE_DEVICE_BGRA_SUPPORT = 0x20
	D3D11_SDK_VERSION               = 7
)

var (
	user32   = gowindows.NewLazySystemDLL("user32.dll")
	imm32    = gowindows.NewLazySystemDLL("imm32.dll")
	comctl32 = gowindows.NewLazySystemDLL("comctl32.dll")
	d3d11    = gowindows.NewLazySystemDLL("d3d11.dll")
	dcomp    = gowindows.NewLazySystemDLL("dcomp.dll")

	procGetKeyState              = user32.NewProc("GetKeyState")
	procScreenToClient           = user32.NewProc("ScreenToClient")
	procSetCapture               = user32.NewProc("SetCapture")
	procReleaseCapture           = user32.NewProc("ReleaseCapture")
	procSetCursor                = user32.NewProc("SetCursor")
	procLoadCursor               = user32.NewProc("LoadCursorW")
	procGetPointerType           = user32.NewProc("GetPointerType")
	procGetPointerInfo           = user32.NewProc("GetPointerInfo")
	procGetPointerTouchInfo      = user32.NewProc("GetPointerTouchInfo")
	procGetPointerPenInfo        = user32.NewProc("GetPointerPenInfo")
	procGetGestureInfo           = user32.NewProc("GetGestureInfo")
	procCloseGestureInfoHandle   = user32.NewProc("CloseGestureInfoHandle")
	procTrackMouseEvent          = user32.NewProc("TrackMouseEvent")
	procGetDpiForWindow          = user32.NewProc("GetDpiForWindow")
	procGetMessageTime           = user32.NewProc("GetMessageTime")
	procImmGetContext            = imm32.NewProc("ImmGetContext")
	procImmReleaseContext        = imm32.NewProc("ImmReleaseContext")
	procImmGetCompositionString  = imm32.NewProc("ImmGetCompositionStringW")
	procImmSetCandidateWindow    = imm32.NewProc("ImmSetCandidateWindow")
	procSetWindowSubclass        = comctl32.NewProc("SetWindowSubclass")
	procRemoveWindowSubclass     = comctl32.NewProc("RemoveWindowSubclass")
	procDefSubclassProc          = comctl32.NewProc("DefSubclassProc")
	procD3D11CreateDevice        = d3d11.NewProc("D3D11CreateDevice")
	procDCompositionCreateDevice = dcomp.NewProc("DCompositionCreateDevice")
)

var (
	// IID_IDXGIDevice
	iidDXGIDevice = gowindows.GUID{Data1: 0x54ec77fa, Data2: 0x1377, Data3: 0x44e6,
		Data4: [8]byte{0x8c, 0x32, 0x88, 0xfd, 0x5f, 0x44, 0xc8, 0x4c}}
	// IID_IDCompositionDevice
	iidDCompositionDevice = gowindows.GUID{Data1: 0xC37EA93A, Data2: 0xE7AA, Data3: 0x450D,
		Data4: [8]byte{0xB1, 0x6F, 0x97, 0x46, 0xCB, 0x04, 0x07, 0xF3}}
)

func GetKeyState(vk int) int16 {
	s, _, _ := procGetKeyState.Call(uintptr(vk))
	return int16(s)
}

func ScreenToClient(hwnd syscall.Handle, p *Point) {
	procScreenToClient.Call(uintptr(hwnd), uintptr(unsafe.Pointer(p)))
}

func SetCapture(hwnd syscall.Handle) {
	procSetCapture.Call(uintptr(hwnd))
}

func ReleaseCapture() {
	procReleaseCapture.Call()
}

func SetCursor(c syscall.Handle) {
	procSetCursor.Call(uintptr(c))
}

// LoadCursor loads a shared system cursor by IDC resource id.
func LoadCursor(id uint16) (syscall.Handle, error) {
	c, _, err := procLoadCursor.Call(0, uintptr(id))
	if c == 0 {
		return 0, fmt.Errorf("LoadCursorW: %v", err)
	}
	return syscall.Handle(c), nil
}

// GetPointerType returns the device kind behind a pointer id.
func GetPointerType(id uint32) (uint32, error) {
	var typ uint32
	r, _, err := procGetPointerType.Call(uintptr(id), uintptr(unsafe.Pointer(&typ)))
	if r == 0 {
		return 0, fmt.Errorf("GetPointerType: %v", err)
	}
	return typ, nil
}

// GetPointerInfo returns the generic info for a pointer id. A zero
// return with an error means the contact already ended.
func GetPointerInfo(id uint32) (PointerInfo, error) {
	var pi PointerInfo
	r, _, err := procGetPointerInfo.Call(uintptr(id), uintptr(unsafe.Pointer(&pi)))
	if r == 0 {
		return PointerInfo{}, fmt.Errorf("GetPointerInfo: %v", err)
	}
	return pi, nil
}

// GetPointerTouchInfo returns the touch info for a pointer id.
func GetPointerTouchInfo(id uint32) (PointerTouchInfo, error) {
	var ti PointerTouchInfo
	r, _, err := procGetPointerTouchInfo.Call(uintptr(id), uintptr(unsafe.Pointer(&ti)))
	if r == 0 {
		return PointerTouchInfo{}, fmt.Errorf("GetPointerTouchInfo: %v", err)
	}
	return ti, nil
}

// GetPointerPenInfo returns the pen info for a pointer id.
func GetPointerPenInfo(id uint32) (PointerPenInfo, error) {
	var pi PointerPenInfo
	r, _, err := procGetPointerPenInfo.Call(uintptr(id), uintptr(unsafe.Pointer(&pi)))
	if r == 0 {
		return PointerPenInfo{}, fmt.Errorf("GetPointerPenInfo: %v", err)
	}
	return pi, nil
}

// GetGestureInfo decodes the gesture handle delivered with
// WM_GESTURE.
func GetGestureInfo(h uintptr) (GestureInfo, error) {
	gi := GestureInfo{CbSize: uint32(unsafe.Sizeof(GestureInfo{}))}
	r, _, err := procGetGestureInfo.Call(h, uintptr(unsafe.Pointer(&gi)))
	if r == 0 {
		return GestureInfo{}, fmt.Errorf("GetGestureInfo: %v", err)
	}
	return gi, nil
}

func CloseGestureInfoHandle(h uintptr) {
	procCloseGestureInfoHandle.Call(h)
}

// TrackMouseLeave (re-)arms the one-shot WM_MOUSELEAVE notification
// for hwnd.
func TrackMouseLeave(hwnd syscall.Handle) error {
	tme := TrackMouseEventData{
		CbSize:    uint32(unsafe.Sizeof(TrackMouseEventData{})),
		DwFlags:   TME_LEAVE,
		HwndTrack: hwnd,
	}
	r, _, err := procTrackMouseEvent.Call(uintptr(unsafe.Pointer(&tme)))
	if r == 0 {
		return fmt.Errorf("TrackMouseEvent: %v", err)
	}
	return nil
}

// GetDpiForWindow returns the DPI of the window, or the default
// screen DPI when the call is unavailable.
func GetDpiForWindow(hwnd syscall.Handle) int {
	if procGetDpiForWindow.Find() != nil {
		return USER_DEFAULT_SCREEN_DPI
	}
	dpi, _, _ := procGetDpiForWindow.Call(uintptr(hwnd))
	if dpi == 0 {
		return USER_DEFAULT_SCREEN_DPI
	}
	return int(dpi)
}

func GetMessageTime() uint32 {
	t, _, _ := procGetMessageTime.Call()
	return uint32(t)
}

func ImmGetContext(hwnd syscall.Handle) uintptr {
	imc, _, _ := procImmGetContext.Call(uintptr(hwnd))
	return imc
}

func ImmReleaseContext(hwnd syscall.Handle, imc uintptr) {
	procImmReleaseContext.Call(uintptr(hwnd), imc)
}

// ImmGetCompositionString reads the UTF-16 composition string selected
// by key (GCS_COMPSTR or GCS_RESULTSTR).
func ImmGetCompositionString(imc uintptr, key int) string {
	size, _, _ := procImmGetCompositionString.Call(imc, uintptr(key), 0, 0)
	if int32(size) <= 0 {
		return ""
	}
	u16 := make([]uint16, size/unsafe.Sizeof(uint16(0)))
	procImmGetCompositionString.Call(imc, uintptr(key), uintptr(unsafe.Pointer(&u16[0])), size)
	return gowindows.UTF16ToString(u16)
}

// ImmGetCompositionValue reads a scalar composition value such as
// GCS_CURSORPOS.
func ImmGetCompositionValue(imc uintptr, key int) int {
	val, _, _ := procImmGetCompositionString.Call(imc, uintptr(key), 0, 0)
	return int(int32(val))
}

// ImmSetCandidateWindow moves the IME candidate window to pos, in
// client coordinates of the window owning imc.
func ImmSetCandidateWindow(imc uintptr, pos Point) error {
	cf := CandidateForm{
		Style:        CFS_CANDIDATEPOS,
		PtCurrentPos: pos,
	}
	r, _, err := procImmSetCandidateWindow.Call(imc, uintptr(unsafe.Pointer(&cf)))
	if r == 0 {
		return fmt.Errorf("ImmSetCandidateWindow: %v", err)
	}
	return nil
}

// SetWindowSubclass installs proc as a subclass of hwnd, letting the
// bridge intercept the host window's messages without replacing its
// window procedure.
func SetWindowSubclass(hwnd syscall.Handle, proc uintptr, id uintptr, refData uintptr) error {
	r, _, err := procSetWindowSubclass.Call(uintptr(hwnd), proc, id, refData)
	if r == 0 {
		return fmt.Errorf("SetWindowSubclass: %v", err)
	}
	return nil
}

func RemoveWindowSubclass(hwnd syscall.Handle, proc uintptr, id uintptr) {
	procRemoveWindowSubclass.Call(uintptr(hwnd), proc, id)
}

func DefSubclassProc(hwnd syscall.Handle, msg uint32, wParam, lParam uintptr) uintptr {
	r, _, _ := procDefSubclassProc.Call(uintptr(hwnd), uintptr(msg), wParam, lParam)
	return r
}

// vtblEntry returns the idx'th function of a COM object's vtable.
func vtblEntry(obj uintptr, idx uintptr) uintptr {
	vtbl := *(*uintptr)(unsafe.Pointer(obj))
	return *(*uintptr)(unsafe.Pointer(vtbl + idx*unsafe.Sizeof(uintptr(0))))
}

// ComCall invokes the idx'th vtable method of obj and returns the
// HRESULT.
func ComCall(obj uintptr, idx uintptr, args ...uintptr) int32 {
	all := append([]uintptr{obj}, args...)
	r, _, _ := syscall.SyscallN(vtblEntry(obj, idx), all...)
	return int32(r)
}

// ComRelease drops one reference on a COM object.
func ComRelease(obj uintptr) {
	if obj != 0 {
		ComCall(obj, 2)
	}
}

// D3D11CreateDevice creates a hardware D3D11 device with BGRA
// support, the pixel format the engine's alpha-enabled surface
// requires.
func D3D11CreateDevice() (uintptr, error) {
	var dev uintptr
	r, _, _ := procD3D11CreateDevice.Call(
		0, // default adapter
		D3D_DRIVER_TYPE_HARDWARE,
		0,
		D3D11_CREATE_DEVICE_BGRA_SUPPORT,
		0, 0,
		D3D11_SDK_VERSION,
		uintptr(unsafe.Pointer(&dev)),
		0, 0,
	)
	if int32(r) < 0 {
		return 0, fmt.Errorf("D3D11CreateDevice: HRESULT 0x%08x", uint32(r))
	}
	return dev, nil
}

// DCompositionCreateDevice creates a DirectComposition device bound
// to the DXGI device behind d3dDevice.
func DCompositionCreateDevice(d3dDevice uintptr) (uintptr, error) {
	var dxgi uintptr
	if hr := ComCall(d3dDevice, 0, // IUnknown::QueryInterface
		uintptr(unsafe.Pointer(&iidDXGIDevice)),
		uintptr(unsafe.Pointer(&dxgi)),
	); hr < 0 {
		return 0, fmt.Errorf("QueryInterface(IDXGIDevice): HRESULT 0x%08x", uint32(hr))
	}
	defer ComRelease(dxgi)
	var dev uintptr
	r, _, _ := procDCompositionCreateDevice.Call(
		dxgi,
		uintptr(unsafe.Pointer(&iidDCompositionDevice)),
		uintptr(unsafe.Pointer(&dev)),
	)
	if int32(r) < 0 {
		return 0, fmt.Errorf("DCompositionCreateDevice: HRESULT 0x%08x", uint32(r))
	}
	return dev, nil
}
