// Package portal wraps every backend call the recruiting portal makes, each
// on the client of the scope that owns it.
package portal

import (
	"fmt"
	"strconv"

	"github.com/jagath-ds/XCalibr-AI-Hiring-System/apiclient"
)

// Portal groups the endpoint sets of one backend.
type Portal struct {
	Public    *Public
	Candidate *Candidate
	Recruiter *Recruiter
	Admin     *Admin
}

func New(clients *apiclient.Set) *Portal {
	return &Portal{
		Public:    &Public{client: clients.Public},
		Candidate: &Candidate{client: clients.Candidate},
		Recruiter: &Recruiter{client: clients.Recruiter},
		Admin:     &Admin{client: clients.Admin},
	}
}

func pathf(format string, ids ...int) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf(format, args...)
}
