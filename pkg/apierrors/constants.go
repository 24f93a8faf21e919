package apierrors

const (
	MsgFailListTodos      = "failListTodos"
	MsgFailFetchTodo      = "failFetchTodo"
	MsgFailFetchStats     = "failFetchStats"
	MsgFailCreateTodo     = "failCreateTodo"
	MsgFailUpdateTodo     = "failUpdateTodo"
	MsgFailDeleteTodo     = "failDeleteTodo"
	MsgTodoNotFound       = "todoNotFound"
	MsgInvalidTodoPayload = "invalidTodoPayload"
	MsgValidationFailed   = "validationFailed"
	MsgInvalidCategory    = "invalidCategory"
	MsgInvalidPriority    = "invalidPriority"
	MsgRouteNotFound      = "routeNotFound"
	MsgInternalError      = "internalError"
)
