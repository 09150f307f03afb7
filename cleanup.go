package main

import (
	"github.com/irods-contrib/ztools/internal/cleanup"
)

type cleanupOptions = cleanup.Options
