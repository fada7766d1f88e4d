package alloc

import "os"

var osExit = os.Exit
