package main

import (
	"fmt"
	"github.com/aacfactory/bintree"
	"github.com/sirupsen/logrus"
	"os"
)

func main() {
	args := ParseArgs()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if args.Debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	var options []bintree.Option
	if args.Legacy {
		options = append(options, bintree.WithLegacyRouting())
	}
	tree := bintree.New(options...)

	tree.Insert(args.Key, args.Value)
	log.WithFields(logrus.Fields{
		"key":    args.Key,
		"value":  args.Value,
		"legacy": args.Legacy,
	}).Debug("inserted")

	value, has := tree.Get(args.Key)
	if !has {
		log.WithField("key", args.Key).Fatal("key not found after insert")
	}
	fmt.Printf("Under %d lives %d\n", args.Key, value)

	if args.Dump {
		if err := tree.Fprint(os.Stdout); err != nil {
			log.WithError(err).Fatal("print tree failed")
		}
	}
}
