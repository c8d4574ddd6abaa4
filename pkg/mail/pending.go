package mail

import "context"

// PendingRecipients collects recipients chosen at the call site before a Mailable is sent
type PendingRecipients struct {
	mailer *Mailer
	to     AddressInput
	cc     AddressInput
	bcc    AddressInput
}

// To replaces the pending to recipients
func (p *PendingRecipients) To(addrs AddressInput) *PendingRecipients {
	p.to = addrs
	return p
}

// Cc replaces the pending cc recipients
func (p *PendingRecipients) Cc(addrs AddressInput) *PendingRecipients {
	p.cc = addrs
	return p
}

// Bcc replaces the pending bcc recipients
func (p *PendingRecipients) Bcc(addrs AddressInput) *PendingRecipients {
	p.bcc = addrs
	return p
}

// Send sends the mailable with the pending recipients appended after the ones set in its Build
func (p *PendingRecipients) Send(ctx context.Context, m Mailable) error {
	return p.mailer.send(ctx, m, p.push)
}

func (p *PendingRecipients) push(b *Base) {
	b.To(p.to).Cc(p.cc).Bcc(p.bcc)
}
