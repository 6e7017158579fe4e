package adapters

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rpm-solv/internal/types"
)

// PrimaryXMLAdapter parses YUM's primary.xml into a *types.RepoIndex. It
// does no network or filesystem I/O (spec.md §4.1): callers hand it an
// already-fetched blob. This mirrors internal/adapters/package_xml.go's
// approach to parsing an XML metadata format with encoding/xml and
// ignoring unknown elements/attributes, extended here for the
// provides/requires/conflicts/obsoletes shape of primary.xml.
type PrimaryXMLAdapter struct{}

// NewPrimaryXMLAdapter constructs a PrimaryXMLAdapter. It holds no state.
func NewPrimaryXMLAdapter() PrimaryXMLAdapter {
	return PrimaryXMLAdapter{}
}

type primaryMetadata struct {
	Packages []primaryPackage `xml:"package"`
}

type primaryPackage struct {
	Type    string         `xml:"type,attr"`
	Name    string         `xml:"name"`
	Version primaryVersion `xml:"version"`
	Format  primaryFormat  `xml:"format"`
}

type primaryVersion struct {
	Epoch string `xml:"epoch,attr"`
	Ver   string `xml:"ver,attr"`
	Rel   string `xml:"rel,attr"`
}

type primaryFormat struct {
	Provides  *primaryEntryList `xml:"provides"`
	Requires  *primaryEntryList `xml:"requires"`
	Conflicts *primaryEntryList `xml:"conflicts"`
	Obsoletes *primaryEntryList `xml:"obsoletes"`
}

type primaryEntryList struct {
	Entries []primaryEntry `xml:"entry"`
}

type primaryEntry struct {
	Name  string `xml:"name,attr"`
	Flags string `xml:"flags,attr"`
	Epoch string `xml:"epoch,attr"`
	Ver   string `xml:"ver,attr"`
	Rel   string `xml:"rel,attr"`
}

// Parse deserializes a primary.xml blob into a *types.RepoIndex. Package
// order in the input is preserved and becomes PackageID order. Unknown
// elements and attributes are ignored; namespace prefixes on
// provides/requires/conflicts/obsoletes/entry are accepted because
// encoding/xml struct tags without an explicit namespace match on local
// name alone.
func (PrimaryXMLAdapter) Parse(xmlText string) (*types.RepoIndex, error) {
	var meta primaryMetadata
	if err := xml.Unmarshal([]byte(xmlText), &meta); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(types.ErrPrefixMalformedXML).
			WithCause(err)
	}

	packages := make([]types.Package, 0, len(meta.Packages))
	for i, raw := range meta.Packages {
		pkg, err := convertPackage(raw)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("%s: package[%d]", err.Error(), i)).
				WithCause(err)
		}
		packages = append(packages, pkg)
	}
	return types.NewRepoIndex(packages), nil
}

func convertPackage(raw primaryPackage) (types.Package, error) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return types.Package{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(types.ErrPrefixMissingField + ": name")
	}

	version, err := convertVersion(raw.Version)
	if err != nil {
		return types.Package{}, err
	}

	return types.Package{
		Name:    name,
		Version: version,
		Format: types.Format{
			Provides:  convertEntryList(raw.Format.Provides),
			Requires:  convertEntryList(raw.Format.Requires),
			Conflicts: convertEntryList(raw.Format.Conflicts),
			Obsoletes: convertEntryList(raw.Format.Obsoletes),
		},
	}, nil
}

func convertVersion(raw primaryVersion) (types.Version, error) {
	epoch := 0
	if strings.TrimSpace(raw.Epoch) != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(raw.Epoch))
		if err != nil {
			return types.Version{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(types.ErrPrefixBadInteger + ": version/@epoch").
				WithCause(err)
		}
		epoch = parsed
	}
	return types.Version{Epoch: epoch, Ver: raw.Ver, Rel: raw.Rel}, nil
}

func convertEntryList(raw *primaryEntryList) []types.Entry {
	if raw == nil || len(raw.Entries) == 0 {
		return nil
	}
	out := make([]types.Entry, 0, len(raw.Entries))
	for _, entry := range raw.Entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		out = append(out, types.Entry{
			Name:  name,
			Flags: types.ConstraintFlag(entry.Flags),
			Epoch: atoiSafe(entry.Epoch),
			Ver:   entry.Ver,
			Rel:   entry.Rel,
		})
	}
	return out
}

func atoiSafe(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}
