package validator

// defaultContentDomains lists registrable domains of social, UGC,
// forum, blogging and review/comparison platforms. A URL on any of
// these classifies as content before any other signal is examined:
// a LinkedIn post about pricing is still third-party content, not a
// first-party commercial site.
//
// This is a hand-maintained data asset; extend it through
// configuration rather than editing call sites.
var defaultContentDomains = []string{
	// Social and UGC
	"reddit.com",
	"quora.com",
	"twitter.com",
	"x.com",
	"facebook.com",
	"instagram.com",
	"linkedin.com",
	"youtube.com",
	"tiktok.com",
	"pinterest.com",
	"tumblr.com",

	// Q&A and developer forums
	"stackoverflow.com",
	"stackexchange.com",
	"ycombinator.com",
	"discourse.org",
	"indiehackers.com",

	// Blogging and publishing platforms
	"medium.com",
	"substack.com",
	"wordpress.com",
	"blogspot.com",
	"dev.to",
	"hashnode.com",
	"ghost.io",

	// Review and comparison aggregators
	"g2.com",
	"capterra.com",
	"trustpilot.com",
	"producthunt.com",
	"alternativeto.net",
	"softwareadvice.com",
	"getapp.com",
	"slant.co",
}
