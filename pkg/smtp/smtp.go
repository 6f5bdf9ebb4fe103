package smtp

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"github.com/Badsnus/club-directory/pkg/logger/types"
)

type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Client sends the directory's transactional mail.
type Client struct {
	sender  Sender
	from    string
	domain  string
	siteURL string
	logger  *types.Logger
}

type Options struct {
	From    string
	Domain  string
	SiteURL string
}

func NewClient(sender Sender, opts Options, logger *types.Logger) *Client {
	return &Client{
		sender:  sender,
		from:    opts.From,
		domain:  opts.Domain,
		siteURL: opts.SiteURL,
		logger:  logger,
	}
}

// SendLoginCode mails a one-time sign-in code.
func (c *Client) SendLoginCode(to string, code string) error {
	msg := c.newMessage(to, "Your Club Directory sign-in code")
	msg.SetBody("text/plain", fmt.Sprintf("Your sign-in code is %s\n\nIt expires shortly. If you did not request it, ignore this email.", code))
	msg.AddAlternative("text/html", fmt.Sprintf("<p>Your sign-in code is <b>%s</b></p>", code))
	if err := c.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("send login code: %w", err)
	}

	c.logger.Debugf("login code sent to %s", to)
	return nil
}

// SendLeaderStatus tells a user they were approved as a club leader or that
// the approval was revoked. Failures are logged, not returned.
func (c *Client) SendLeaderStatus(to string, name string, approved bool) {
	var subject, body string
	if approved {
		subject = "You can now create your club profile"
		body = fmt.Sprintf("Hi %s,\n\nAn administrator approved you as a club leader. Open the portal to create your club profile: %s/portal\n", name, c.siteURL)
	} else {
		subject = "Club leader access revoked"
		body = fmt.Sprintf("Hi %s,\n\nYour club leader approval was revoked by an administrator. Contact an administrator if you think this is a mistake.\n", name)
	}

	msg := c.newMessage(to, subject)
	msg.SetBody("text/plain", body)
	if err := c.sender.DialAndSend(msg); err != nil {
		c.logger.Errorf("failed to send leader status to %s: %v", to, err)
		return
	}

	c.logger.Infof("leader status (approved: %t) sent to %s", approved, to)
}

func (c *Client) newMessage(to, subject string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("Message-ID", generateMessageID(c.domain))
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	return msg
}

func generateMessageID(domain string) string {
	uniqueID := uuid.New().String()
	return fmt.Sprintf("<%s@%s>", uniqueID, domain)
}
