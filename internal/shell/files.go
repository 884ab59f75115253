package shell

// File is one entry in the session's read-only virtual listing.
type File struct {
	Name    string
	Content string
}

var files = []File{
	{
		Name: "about.txt",
		Content: `hi, i'm adrian.

backend engineer who thinks the terminal peaked as a user interface
somewhere around 1987. i build network services in go, poke at
databases, and keep this site reachable over ssh because browsers
have enough websites already.

p.s. the basement holds a brick or two.`,
	},
	{
		Name: "projects.txt",
		Content: `terminal-website   this site. a shell, a hidden game, an ssh server.
hexd               hex viewer with vim keys and zero mercy
driftdb            toy replicated kv store, raft from scratch
gopherhole         gopher protocol server (yes, that gopher)`,
	},
	{
		Name: "contact.txt",
		Content: `email   adrian@termsite.dev
github  github.com/Adriancoding96
ssh     ssh guest@termsite.dev`,
	},
	{
		Name: "skills.txt",
		Content: `go, sql, a suspicious amount of yaml
linux, docker, wireguard
making terminals do things they were not meant to do`,
	},
}

// Files returns the virtual listing in display order.
func Files() []File {
	return files
}

// ReadFile returns a file's content by name.
func ReadFile(name string) (string, bool) {
	for _, f := range files {
		if f.Name == name {
			return f.Content, true
		}
	}
	return "", false
}
