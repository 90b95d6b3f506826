package github

import (
	"strconv"

	"github.com/doclift/doclift/internal/core/domain"
)

// repoResponse is the GitHub API repository shape consumed by the importer.
type repoResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	CloneURL    string `json:"clone_url"`
	SSHURL      string `json:"ssh_url"`
	HTMLURL     string `json:"html_url"`
	Permissions struct {
		Admin bool `json:"admin"`
	} `json:"permissions"`
}

func (r *repoResponse) toDomain(userID, orgID string) domain.RemoteRepository {
	return domain.RemoteRepository{
		UserID:         userID,
		OrganizationID: orgID,
		Provider:       domain.ProviderGitHub,
		RemoteID:       strconv.FormatInt(r.ID, 10),
		Name:           r.Name,
		FullName:       r.FullName,
		Description:    r.Description,
		CloneURL:       r.CloneURL,
		SSHURL:         r.SSHURL,
		HTMLURL:        r.HTMLURL,
		Private:        r.Private,
		Admin:          r.Permissions.Admin,
	}
}

// orgStub is the abbreviated org shape returned by /user/orgs.
type orgStub struct {
	Login string `json:"login"`
}

// orgResponse is the full organization shape returned by /orgs/{login}.
type orgResponse struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	HTMLURL   string `json:"html_url"`
	AvatarURL string `json:"avatar_url"`
}

func (o *orgResponse) toDomain(userID string) domain.RemoteOrganization {
	return domain.RemoteOrganization{
		UserID:    userID,
		Provider:  domain.ProviderGitHub,
		RemoteID:  strconv.FormatInt(o.ID, 10),
		Slug:      o.Login,
		Name:      o.Name,
		Email:     o.Email,
		URL:       o.HTMLURL,
		AvatarURL: o.AvatarURL,
	}
}
