package handler

type ContextKey string

var (
	StaffTypeCtxKey ContextKey = "staffType"
	SubCtxKey       ContextKey = "sub"
	MyInfoCtx       ContextKey = "myInfo"
	StaffInfoCtx    ContextKey = "staffInfo"
	ZoneCtx         ContextKey = "zone"
	WorkingSlotCtx  ContextKey = "workingSlot"
	RegisterCtx     ContextKey = "register"
	SwapRequestCtx  ContextKey = "swapRequest"
)
