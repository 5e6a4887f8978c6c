// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"net"
	"strconv"

	"github.com/mailmig/go-uidl-sync/config"
	"github.com/mailmig/go-uidl-sync/imapconnection"
	"github.com/mailmig/go-uidl-sync/log"
	"github.com/mailmig/go-uidl-sync/persistence"
	"github.com/mailmig/go-uidl-sync/pop3connection"
	"github.com/mailmig/go-uidl-sync/uidlsync"

	"github.com/sirupsen/logrus"
)

func main() {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig("config.toml")
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer p.Close()

	pop3Host, pop3PortStr, err := net.SplitHostPort(conf.Pop3Host)
	if err != nil {
		logger.WithField("error", err).Fatal("Pop3Host must be host:port")
	}
	pop3Port, err := strconv.Atoi(pop3PortStr)
	if err != nil {
		logger.WithField("error", err).Fatal("Pop3Host must be host:port")
	}
	resolver := pop3connection.NewResolver(pop3Host, pop3Port, conf.Pop3TLS, conf.Pop3User, conf.Pop3Password)

	imapConn, err := imapconnection.NewImapConnection(conf.ImapHost, conf.ImapUser, conf.ImapPassword)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start imap connector")
	}
	defer imapConn.Close()

	configs := []uidlsync.ConfigFunc{uidlsync.LegacyMailbox(conf.Pop3Mailbox)}
	if conf.AllMailboxes {
		configs = append(configs, uidlsync.AllMailboxes())
	}
	if conf.IgnoreMissingUidls {
		configs = append(configs, uidlsync.IgnoreMissingUidls())
	}
	if conf.IgnoreExtraUidls {
		configs = append(configs, uidlsync.IgnoreExtraUidls())
	}
	if conf.SkipSizeCheck {
		configs = append(configs, uidlsync.SkipSizeCheck())
	}
	if conf.SkipUidlCache {
		configs = append(configs, uidlsync.SkipUidlCache())
	}

	syncer, err := uidlsync.NewSyncer(resolver, p, configs...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start uidl syncer")
	}
	defer syncer.Close()

	logger.WithFields(logrus.Fields{"mailboxes": conf.Mailboxes, "allmailboxes": conf.AllMailboxes}).Info("Syncing POP3 UIDLs")
	for _, name := range conf.Mailboxes {
		mb := syncer.Mailbox(imapConn, name, nil)
		err = mb.SyncIfNeeded()
		if err != nil {
			logger.WithFields(logrus.Fields{"mailbox": name, "error": err}).Fatal("Syncing uidls failed")
		}
		logger.WithFields(logrus.Fields{"mailbox": name, "matched": mb.Matched()}).Info("Mailbox synced")
	}
}
