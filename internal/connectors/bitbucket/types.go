package bitbucket

import "github.com/doclift/doclift/internal/core/domain"

// repoResponse is the Bitbucket 2.0 API repository shape consumed by
// the importer.
type repoResponse struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
	Links       struct {
		HTML struct {
			Href string `json:"href"`
		} `json:"html"`
		Clone []struct {
			Name string `json:"name"`
			Href string `json:"href"`
		} `json:"clone"`
	} `json:"links"`
}

func (r *repoResponse) toDomain(userID string) domain.RemoteRepository {
	repo := domain.RemoteRepository{
		UserID:      userID,
		Provider:    domain.ProviderBitbucket,
		RemoteID:    r.UUID,
		Name:        r.Name,
		FullName:    r.FullName,
		Description: r.Description,
		HTMLURL:     r.Links.HTML.Href,
		Private:     r.IsPrivate,
	}
	for _, clone := range r.Links.Clone {
		switch clone.Name {
		case "https":
			repo.CloneURL = clone.Href
		case "ssh":
			repo.SSHURL = clone.Href
		}
	}
	return repo
}

// privilegesResponse is the 1.0 API team privileges shape. Keys of
// Teams are team names; values are the privilege level.
type privilegesResponse struct {
	Teams map[string]string `json:"teams"`
}
