package constant

// Operating system identifiers, compared against runtime.GOOS.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
