package main

import (
	"github.com/irods-contrib/ztools/internal/rmtree"
)

type rmtreeOptions = rmtree.Options
